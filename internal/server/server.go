// internal/server/server.go
package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/tamzrod/diag-panel/internal/query"
)

// Server exposes the diagnostic panel as a JSON API.
// It owns the current query snapshot: replaced wholesale on every
// scan, read-only in between.
type Server struct {
	httpServer *http.Server
	addr       string

	facade      *query.Facade
	downloadDir string

	mu    sync.Mutex
	state *query.State
}

func New(addr string, facade *query.Facade, downloadDir string) *Server {
	s := &Server{
		addr:        addr,
		facade:      facade,
		downloadDir: downloadDir,
		state:       &query.State{},
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/devices/", s.handleDeviceBits)
	mux.HandleFunc("/api/hr-mode", s.handleHRMode)
	mux.HandleFunc("/api/radio", s.handleRadio)
	mux.HandleFunc("/api/downloads", s.handleDownloads)
	mux.HandleFunc("/api/analysis/battery", s.handleBatteryAnalysis)
	mux.HandleFunc("/api/analysis/orientation", s.handleOrientationAnalysis)
}

// Start runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Printf("diagpanel listening on %s", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

// currentState returns the latest snapshot.
func (s *Server) currentState() *query.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// replaceState swaps in a fresh snapshot.
func (s *Server) replaceState(st *query.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}
