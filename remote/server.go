// Package remote implements the remote-control channel: a WebSocket
// server accepting zoom commands and broadcasting state updates, an
// HTTP status surface, and a legacy UDP listener for plain "x y"
// mouse feeds.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/zoomlens/zoom"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Server accepts remote-control connections. All shared fields are
// protected by mu (connection handlers run on their own goroutines).
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	handler Handler
	status  func() zoom.Status

	httpSrv  *http.Server
	listener net.Listener
	port     int
}

// NewServer creates a server for the given port. status supplies the
// controller snapshot served at /status; it is called from request
// goroutines, so the host should return a value captured between
// ticks.
func NewServer(port int, handler Handler, status func() zoom.Status) *Server {
	return &Server{
		clients: make(map[*websocket.Conn]struct{}),
		handler: handler,
		status:  status,
		port:    port,
	}
}

// Start opens the listener and serves in a background goroutine.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("/", s.handleWebSocket)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("remote listen on port %d: %w", s.port, err)
	}
	s.listener = ln
	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[remote] server error: %v", err)
		}
	}()

	log.Printf("[remote] listening on %s", ln.Addr())
	return nil
}

// Addr returns a dialable bound address, useful when the port was 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok && addr.IP.IsUnspecified() {
		return fmt.Sprintf("127.0.0.1:%d", addr.Port)
	}
	return s.listener.Addr().String()
}

// Stop closes the listener and disconnects all clients.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}

	s.mu.Lock()
	for conn := range s.clients {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	return s.httpSrv.Shutdown(ctx)
}

// BroadcastState pushes a state update to every connected client.
// Clients that fail to accept the write are dropped.
func (s *Server) BroadcastState(st zoom.Status) {
	update := StateUpdate{Type: TypeStateUpdate, Status: st}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := wsjson.Write(ctx, conn, update)
		cancel()
		if err != nil {
			s.dropClient(conn)
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[remote] accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	defer s.dropClient(conn)

	log.Printf("[remote] client connected from %s", r.RemoteAddr)

	for {
		var msg Message
		if err := wsjson.Read(r.Context(), conn, &msg); err != nil {
			return
		}
		s.dispatch(r.Context(), conn, msg)
	}
}

func (s *Server) dispatch(ctx context.Context, conn *websocket.Conn, msg Message) {
	switch msg.Type {
	case TypeMousePosition:
		s.handler.SetMousePosition(msg.X, msg.Y)
	case TypeClearMouse:
		s.handler.ClearMousePosition()
	case TypeToggleZoom:
		s.handler.ToggleZoom()
	case TypeToggleFollow:
		s.handler.ToggleFollow()
	case TypeSetProfile:
		if msg.Profile != "" {
			s.handler.SetProfile(msg.Profile)
		}
	case TypePing:
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		if err := wsjson.Write(wctx, conn, Message{Type: TypePong}); err != nil {
			log.Printf("[remote] pong failed: %v", err)
		}
	default:
		log.Printf("[remote] unknown message type %q", msg.Type)
	}
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(s.status()); err != nil {
		log.Printf("[remote] status encode error: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
