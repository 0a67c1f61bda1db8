// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewer serves a live JSON view of registered mobjects over HTTP,
// with a websocket channel pushing change notifications to connected
// inspectors.
package viewer

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/gogpu/mobject"
	"github.com/gogpu/mobject/render"
)

// Server tracks registered mobjects and exposes them for inspection.
// Registration and notification are safe for concurrent use; the mobjects
// themselves are still owned by the frame loop.
type Server struct {
	mu       sync.Mutex
	mobjects map[string]*mobject.Mobject
	clients  map[*client]bool

	upgrader websocket.Upgrader
}

// NewServer creates an empty viewer server.
func NewServer() *Server {
	return &Server{
		mobjects: make(map[string]*mobject.Mobject),
		clients:  make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Register adds or replaces a mobject under its ID and notifies watchers.
func (s *Server) Register(m *mobject.Mobject) {
	s.mu.Lock()
	s.mobjects[m.ID()] = m
	s.mu.Unlock()
	s.Notify("register", m.ID())
}

// Unregister removes a mobject by ID and notifies watchers.
func (s *Server) Unregister(id string) {
	s.mu.Lock()
	delete(s.mobjects, id)
	s.mu.Unlock()
	s.Notify("unregister", id)
}

// Notify broadcasts an event to all connected websocket clients.
func (s *Server) Notify(event, id string) {
	data, err := json.Marshal(map[string]string{"event": event, "id": id})
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Slow consumer; drop the event rather than block the loop.
		}
	}
}

// Handler returns the HTTP handler tree: JSON endpoints, the websocket
// upgrade route, and recovery/logging middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/json/mobjects", s.handleList)
	r.HandleFunc("/json/mobject/{id}", s.handleDetail)
	r.HandleFunc("/ws", s.handleWS)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)
	return h
}

// ListenAndServe starts serving on addr. It blocks.
func (s *Server) ListenAndServe(addr string) error {
	mobject.Logger().Info("viewer: starting server", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type mobjectSummary struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Shapes int    `json:"shapes"`
}

type contourView struct {
	Segments int  `json:"segments"`
	Hole     bool `json:"hole"`
}

type mobjectDetail struct {
	ID            string        `json:"id"`
	State         string        `json:"state"`
	StrokeColor   string        `json:"strokeColor"`
	StrokeOpacity float64       `json:"strokeOpacity"`
	StrokeWidth   float64       `json:"strokeWidth"`
	FillColor     string        `json:"fillColor"`
	FillOpacity   float64       `json:"fillOpacity"`
	Contours      []contourView `json:"contours"`
	FillTriangles int           `json:"fillTriangles"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]mobjectSummary, 0, len(s.mobjects))
	for _, m := range s.mobjects {
		out = append(out, mobjectSummary{
			ID:     m.ID(),
			State:  m.State().String(),
			Shapes: len(m.Shapes()),
		})
	}
	s.mu.Unlock()
	writeJSON(w, out)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	m, ok := s.mobjects[id]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	style := m.Style()
	d := mobjectDetail{
		ID:            m.ID(),
		State:         m.State().String(),
		StrokeColor:   style.StrokeColor.String(),
		StrokeOpacity: style.StrokeOpacity,
		StrokeWidth:   style.StrokeWidth,
		FillColor:     style.FillColor.String(),
		FillOpacity:   style.FillOpacity,
	}
	for _, shape := range m.Shapes() {
		d.Contours = append(d.Contours, contourView{Segments: shape.Outer.SegmentCount()})
		for _, hole := range shape.Holes {
			d.Contours = append(d.Contours, contourView{Segments: hole.SegmentCount(), Hole: true})
		}
	}
	if n := m.Node().Find(m.ID() + "/fill"); n != nil {
		if fs, ok := n.Drawable().(*mobject.FillSurface); ok {
			if mesh, ok := fs.Geometry.(*render.Mesh); ok {
				d.FillTriangles = mesh.TriangleCount()
			}
		}
	}
	writeJSON(w, d)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		mobject.Logger().Warn("viewer: encode response", "err", err)
	}
}
