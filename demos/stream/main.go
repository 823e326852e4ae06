// Stream runs a headless boxtree simulation and pushes tree snapshots to
// browser clients over WebSocket. Each tick every element drifts, the tree
// re-files movers that leave their node's zone, and connected clients
// receive the full node/element layout as JSON.
//
//	go run ./demos/stream
//	# then connect to ws://localhost:8642/ws
package main

import (
	"encoding/json"
	"log"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/boxtree"
)

const (
	addr      = ":8642"
	zoneSize  = 1024
	numBoxes  = 200
	tickRate  = 30 // simulation ticks per second
	boxSize   = 12
	maxValues = 4
	maxDepth  = 6
)

// drifter wanders with a fixed per-tick velocity, bouncing off the zone walls.
type drifter struct {
	box    boxtree.Box
	dx, dy int
}

func (d *drifter) BoundingBox() *boxtree.Box { return &d.box }

func (d *drifter) Update(dt float64) bool {
	if d.box.X+d.dx < 0 || d.box.X+d.box.W+d.dx > zoneSize {
		d.dx = -d.dx
	}
	if d.box.Y+d.dy < 0 || d.box.Y+d.box.H+d.dy > zoneSize {
		d.dy = -d.dy
	}
	d.box.Translate(d.dx, d.dy)
	return d.dx != 0 || d.dy != 0
}

// nodeSnapshot is the wire form of one tree node.
type nodeSnapshot struct {
	Zone     boxtree.Box    `json:"zone"`
	Leaf     bool           `json:"leaf"`
	Values   []boxtree.Box  `json:"values,omitempty"`
	Children []nodeSnapshot `json:"children,omitempty"`
}

// snapshot walks the tree into its wire form. Caller holds the tree lock.
func snapshot(t *boxtree.Tree[*drifter]) nodeSnapshot {
	s := nodeSnapshot{Zone: t.Zone(), Leaf: t.IsLeaf()}
	for _, v := range t.Values() {
		s.Values = append(s.Values, *v.BoundingBox())
	}
	for _, c := range t.Children() {
		s.Children = append(s.Children, snapshot(c))
	}
	return s
}

// server owns the tree and the connected clients. The tree is
// single-threaded by contract, so every access goes through mu — the root
// of the tree is the natural serialization boundary.
type server struct {
	mu   sync.Mutex
	tree *boxtree.Tree[*drifter]

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]*sync.Mutex

	upgrader websocket.Upgrader
}

func newServer() *server {
	tree := boxtree.New[*drifter](maxValues, maxDepth, boxtree.Box{W: zoneSize, H: zoneSize})
	for i := 0; i < numBoxes; i++ {
		tree.Insert(&drifter{
			box: boxtree.Box{
				X: rand.IntN(zoneSize - boxSize),
				Y: rand.IntN(zoneSize - boxSize),
				W: boxSize,
				H: boxSize,
			},
			dx: 1 + rand.IntN(3),
			dy: 1 + rand.IntN(3),
		})
	}
	return &server{
		tree:    tree,
		clients: map[*websocket.Conn]*sync.Mutex{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// run advances the simulation and broadcasts a snapshot every tick.
func (s *server) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	dt := 1.0 / float64(tickRate)
	for range ticker.C {
		s.mu.Lock()
		boxtree.Update(s.tree, dt)
		snap := snapshot(s.tree)
		stats := s.tree.Stats()
		s.mu.Unlock()

		msg, err := json.Marshal(struct {
			Type  string        `json:"type"`
			Stats boxtree.Stats `json:"stats"`
			Root  nodeSnapshot  `json:"root"`
		}{Type: "tree", Stats: stats, Root: snap})
		if err != nil {
			log.Printf("snapshot marshal: %v", err)
			continue
		}
		s.broadcast(msg)
	}
}

func (s *server) broadcast(msg []byte) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn, mu := range s.clients {
		mu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, msg)
		mu.Unlock()
		if err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = &sync.Mutex{}
	s.clientsMu.Unlock()
	log.Printf("client connected: %s", conn.RemoteAddr())

	defer func() {
		conn.Close()
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		log.Printf("client disconnected: %s", conn.RemoteAddr())
	}()

	// Drain client messages so pings and closes are processed; an insert
	// request adds a box at the given position.
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req struct {
			Type string `json:"type"`
			X    int    `json:"x"`
			Y    int    `json:"y"`
		}
		if err := json.Unmarshal(msg, &req); err != nil || req.Type != "insert" {
			continue
		}
		s.mu.Lock()
		s.tree.Insert(&drifter{
			box: boxtree.Box{X: req.X, Y: req.Y, W: boxSize, H: boxSize},
			dx:  1 + rand.IntN(3),
			dy:  1 + rand.IntN(3),
		})
		s.mu.Unlock()
	}
}

func main() {
	s := newServer()
	go s.run()

	http.HandleFunc("/ws", s.handleWS)
	log.Printf("streaming tree snapshots on ws://localhost%s/ws", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
