// Package preview serves the rendered page locally while the profile
// document is being edited. With watch enabled it re-renders on every
// request and pushes a reload to connected browsers when the document
// changes on disk.
package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/knadh/koanf/providers/file"

	"linkforge/internal/export"
	"linkforge/internal/profile"
)

// Config holds preview server configuration.
type Config struct {
	Host        string
	Port        int
	ProfilePath string
	Watch       bool
}

// Server renders the profile document on demand. The page is never cached:
// each request reads the document and regenerates, so a reload always
// reflects the file on disk.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	upgrader   websocket.Upgrader
	watcher    *file.File

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a preview server for the given profile document.
func New(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The preview binds to loopback; cross-origin checks only get
			// in the way of LAN testing.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handlePage)
	if s.cfg.Watch {
		r.Get("/ws", s.handleWS)
	}

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	cfg, err := profile.Load(s.cfg.ProfilePath)
	if err != nil {
		http.Error(w, fmt.Sprintf("loading profile: %v", err), http.StatusInternalServerError)
		return
	}

	html, err := export.Generate(cfg)
	if err != nil {
		http.Error(w, fmt.Sprintf("rendering page: %v", err), http.StatusInternalServerError)
		return
	}

	if s.cfg.Watch {
		html = injectReload(html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(html))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain until the browser goes away; reads also surface close frames.
	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// broadcastReload tells every connected browser to refresh.
func (s *Server) broadcastReload() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			s.drop(c)
		}
	}
}

// watchProfile subscribes to changes of the profile document and fans the
// events out to connected browsers.
func (s *Server) watchProfile() error {
	f := file.Provider(s.cfg.ProfilePath)
	if err := f.Watch(func(event interface{}, err error) {
		if err != nil {
			log.Printf("watch error: %v", err)
			return
		}
		log.Printf("%s changed, reloading", s.cfg.ProfilePath)
		s.broadcastReload()
	}); err != nil {
		return fmt.Errorf("watching %s: %w", s.cfg.ProfilePath, err)
	}
	s.watcher = f
	return nil
}

// Start begins listening on the configured address. Blocks until the
// server stops.
func (s *Server) Start() error {
	if s.cfg.Watch {
		if err := s.watchProfile(); err != nil {
			return err
		}
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("linkforge preview listening on http://%s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and stops the file watcher.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Unwatch()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

const reloadScript = `<script>(function(){var p=location.protocol==="https:"?"wss":"ws";var ws=new WebSocket(p+"://"+location.host+"/ws");ws.onmessage=function(){location.reload()};ws.onclose=function(){setTimeout(function(){location.reload()},1000)};})();</script>`

// injectReload places the live-reload client just before </body> and
// drops the page's CSP meta, which would otherwise block the websocket
// and the injected script. Both changes exist only in the preview; the
// exported page never carries them.
func injectReload(html string) string {
	if start := strings.Index(html, `<meta http-equiv="Content-Security-Policy"`); start >= 0 {
		if end := strings.Index(html[start:], "\n"); end >= 0 {
			html = html[:start] + html[start+end+1:]
		}
	}
	idx := strings.LastIndex(html, "</body>")
	if idx < 0 {
		return html + reloadScript
	}
	return html[:idx] + reloadScript + "\n" + html[idx:]
}
