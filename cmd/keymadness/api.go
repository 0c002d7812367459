package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"strconv"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mastercactapus/keymadness/coord"
	"github.com/mastercactapus/keymadness/keyboard"
)

type api struct {
	http.Handler
	layout keyboard.Layout
	steps  chan stepState
	sse    *sse.Server
}

// stepState is one cursor snapshot, pushed after every applied
// instruction and streamed out on /events/steps.
type stepState struct {
	Instruction string      `json:"instruction"`
	Position    coord.Point `json:"position"`
	Output      string      `json:"output"`
}

type runResult struct {
	Output   string      `json:"output"`
	Position coord.Point `json:"position"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool { return true },
}

func newAPI(l keyboard.Layout) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		layout:  l,
		steps:   make(chan stepState, 1000),
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/run", a.run).Methods("POST")
	r.HandleFunc("/api/generate", a.generate).Methods("POST")
	r.HandleFunc("/api/layout", a.layoutRows).Methods("GET")
	r.HandleFunc("/ws", a.session)
	r.PathPrefix("/events/").Handler(a.sse)

	go func() {
		for state := range a.steps {
			data, err := json.Marshal(state)
			if err != nil {
				log.Printf("ERROR: marshal json: %+v", err)
				continue
			}
			a.sse.SendMessage("/events/steps", sse.SimpleMessage(string(data)))
		}
	}()

	return a
}

func startPoint(req *http.Request) (coord.Point, error) {
	p := coord.Point{X: 4, Y: 2}

	var err error
	parse := func(param string, into *int) {
		s := req.FormValue(param)
		if s == "" || err != nil {
			return
		}
		*into, err = strconv.Atoi(s)
	}
	parse("x", &p.X)
	parse("y", &p.Y)

	return p, err
}

func (a *api) pushStep(in keyboard.Instruction, c *keyboard.Cursor) {
	select {
	case a.steps <- stepState{Instruction: in.String(), Position: c.Position(), Output: c.Output()}:
	default:
		// never stall a run when nobody is draining the stream
	}
}

func (a *api) run(w http.ResponseWriter, req *http.Request) {
	start, err := startPoint(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := keyboard.NewCursor(a.layout, start)
	for _, in := range keyboard.Parse(req.FormValue("instructions")) {
		c.Apply(in)
		a.pushStep(in, c)
	}

	err = json.NewEncoder(w).Encode(runResult{Output: c.Output(), Position: c.Position()})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) generate(w http.ResponseWriter, req *http.Request) {
	start, err := startPoint(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text := strings.ToUpper(req.FormValue("text"))
	_, err = w.Write([]byte(keyboard.GenerateInstructions(a.layout, start, text) + "\n"))
	if err != nil {
		log.Println("ERROR: write:", err)
	}
}

func (a *api) layoutRows(w http.ResponseWriter, req *http.Request) {
	err := json.NewEncoder(w).Encode(strings.Split(a.layout.String(), "\n"))
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

// session runs an interactive cursor over a websocket: every text
// frame is executed as an instruction string and the resulting state
// is written back.
func (a *api) session(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	c := keyboard.NewCursor(a.layout, coord.Point{X: 4, Y: 2})
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			log.Println("ERROR: read:", err)
			return
		}

		for _, in := range keyboard.Parse(string(data)) {
			c.Apply(in)
			a.pushStep(in, c)
		}

		err = ws.WriteJSON(runResult{Output: c.Output(), Position: c.Position()})
		if err != nil {
			log.Println("ERROR: send:", err)
			return
		}
	}
}
