package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/mastercactapus/keymadness/coord"
	"github.com/mastercactapus/keymadness/keyboard"
)

// defaultProgram types HELLO from the default starting key.
const defaultProgram = "R,S,U,L:3,S,D,R:6,S,S,U,S"

func main() {
	log.SetFlags(log.Lshortfile)

	cmd := "run"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "run":
		runCmd(args)
	case "generate":
		generateCmd(args)
	case "serve":
		serveCmd(args)
	default:
		log.Fatalf("unknown command %q (expected run, generate, or serve)", cmd)
	}
}

func startFlags(fs *flag.FlagSet) (x, y *int) {
	x = fs.Int("x", 4, "X starting position on the keyboard.")
	y = fs.Int("y", 2, "Y starting position on the keyboard.")
	return x, y
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	x, y := startFlags(fs)
	fs.Parse(args)

	instructions := defaultProgram
	if fs.NArg() > 0 {
		instructions = fs.Arg(0)
	}

	c := keyboard.NewCursor(keyboard.Default, coord.Point{X: *x, Y: *y})
	c.RunString(instructions)
	fmt.Println(c.Output())
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	x, y := startFlags(fs)
	fs.Parse(args)

	text := "Hello"
	if fs.NArg() > 0 {
		text = fs.Arg(0)
	}

	start := coord.Point{X: *x, Y: *y}
	fmt.Println(keyboard.GenerateInstructions(keyboard.Default, start, strings.ToUpper(text)))
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":9091", "Address to bind the keymadness server to.")
	fs.Parse(args)

	api := newAPI(keyboard.Default)

	err := http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}
