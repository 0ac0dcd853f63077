package observer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Path is the websocket endpoint spectators connect to.
const Path = "/observe"

const (
	writeWait  = 5 * time.Second
	readWait   = 60 * time.Second
	sendBuffer = 8
)

// Server streams JSON frames published by the game loop to read-only
// spectators. Publish never blocks: slow spectators miss frames.
type Server struct {
	log      *slog.Logger
	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu   sync.Mutex
	subs map[uint64]chan []byte
	last []byte
}

// NewServer creates a Server with no spectators.
func NewServer(log *slog.Logger) *Server {
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // loopback only, see Handler
		},
		subs: make(map[uint64]chan []byte),
	}
}

// Publish encodes v once and offers it to every spectator.
func (s *Server) Publish(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = b
	for _, ch := range s.subs {
		select {
		case ch <- b:
		default:
		}
	}
	return nil
}

// Spectators returns the number of connected spectators.
func (s *Server) Spectators() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Server) subscribe() (uint64, chan []byte) {
	id := s.nextID.Add(1)
	ch := make(chan []byte, sendBuffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil {
		ch <- s.last
	}
	s.subs[id] = ch
	return id, ch
}

func (s *Server) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Handler serves the websocket endpoint. Non-loopback clients are refused.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id, frames := s.subscribe()
		defer s.unsubscribe(id)
		log := s.log.With("spectator", id, "remote", r.RemoteAddr)
		log.Info("spectator connected")

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Reader: spectators send nothing, but reading notices the close.
		go func() {
			defer cancel()
			for {
				_ = conn.SetReadDeadline(time.Now().Add(readWait))
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				log.Info("spectator disconnected")
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
				return
			case b := <-frames:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					log.Debug("write frame", "error", err)
					return
				}
			}
		}
	}
}

// Serve runs the HTTP server on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(Path, s.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown observer: %w", err)
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve observer: %w", err)
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.log.Info("observer listening", "addr", ln.Addr().String(), "path", Path)
	return s.Serve(ctx, ln)
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
