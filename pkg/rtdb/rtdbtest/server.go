// Package rtdbtest provides an in-memory realtime database REST endpoint for tests.
package rtdbtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server is an httptest server holding a JSON tree.
type Server struct {
	*httptest.Server

	mu   sync.Mutex
	root map[string]any
	seq  int
}

// NewServer starts a server with an empty tree. Call Close when done.
func NewServer() *Server {
	s := &Server{root: map[string]any{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Seed stores value at path as if it had been PUT.
func (s *Server) Seed(path string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(split(path), v)
}

// Value returns the node at path, or nil when absent.
func (s *Server) Value(path string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(split(path))
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := split(strings.TrimSuffix(r.URL.Path, ".json"))

	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		v := s.get(path)
		if m, ok := v.(map[string]any); ok && r.URL.Query().Get("shallow") == "true" {
			keys := make(map[string]bool, len(m))
			for k := range m {
				keys[k] = true
			}
			v = keys
		}
		writeJSON(w, v)
	case http.MethodPut:
		var v any
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			http.Error(w, `{"error":"invalid data"}`, http.StatusBadRequest)
			return
		}
		s.set(path, v)
		writeJSON(w, v)
	case http.MethodPatch:
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, `{"error":"invalid data"}`, http.StatusBadRequest)
			return
		}
		for k, v := range fields {
			s.set(append(append([]string{}, path...), split(k)...), v)
		}
		writeJSON(w, fields)
	case http.MethodPost:
		var v any
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			http.Error(w, `{"error":"invalid data"}`, http.StatusBadRequest)
			return
		}
		s.seq++
		key := fmt.Sprintf("-K%06d", s.seq)
		s.set(append(append([]string{}, path...), key), v)
		writeJSON(w, map[string]string{"name": key})
	case http.MethodDelete:
		s.set(path, nil)
		writeJSON(w, nil)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) get(path []string) any {
	var cur any = s.root
	for _, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

// set stores v at path; a nil v removes the node and prunes empty parents.
func (s *Server) set(path []string, v any) {
	if len(path) == 0 {
		if m, ok := v.(map[string]any); ok {
			s.root = m
		} else {
			s.root = map[string]any{}
		}
		return
	}
	parents := []map[string]any{s.root}
	cur := s.root
	for _, seg := range path[:len(path)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			if v == nil {
				return
			}
			next = map[string]any{}
			cur[seg] = next
		}
		parents = append(parents, next)
		cur = next
	}
	last := path[len(path)-1]
	if v == nil {
		delete(cur, last)
		for i := len(parents) - 1; i > 0; i-- {
			if len(parents[i]) > 0 {
				break
			}
			delete(parents[i-1], path[i-1])
		}
		return
	}
	cur[last] = v
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
