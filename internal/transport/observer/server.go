package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"

	"neoncity/internal/city"
)

// Server exposes a read-only view of a running city: the static layout over
// HTTP and a live frame stream over websocket.
type Server struct {
	hub    *Hub
	layout city.Layout
	log    *log.Logger

	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, layout city.Layout, logger *log.Logger) *Server {
	return &Server{
		hub:    hub,
		layout: layout,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // loopback only
		},
	}
}

// Handler routes /v1/layout and /v1/ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/v1/layout", gzhttp.GzipHandler(s.LayoutHandler()))
	mux.HandleFunc("/v1/ws", s.WSHandler())
	return mux
}

func (s *Server) LayoutHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(LayoutResponse{ProtocolVersion: Version, Layout: s.layout})
	}
}

// errBadSubscribe marks a message that is not a SUBSCRIBE for this version.
var errBadSubscribe = errors.New("expected SUBSCRIBE")

const (
	handshakeTimeout = 5 * time.Second
	writeTimeout     = 5 * time.Second
	idleTimeout      = 60 * time.Second
)

// WSHandler streams frames to one session. The first message must be a
// valid SUBSCRIBE; later ones replace the filter and anything else is
// ignored.
func (s *Server) WSHandler() http.HandlerFunc {
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

		_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
		sub, err := readSubscribe(conn)
		if err != nil {
			if errors.Is(err, errBadSubscribe) {
				msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			}
			return
		}

		sid := uuid.New().String()
		sess := s.hub.join(sid, sub)
		defer s.hub.leave(sid)

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(WelcomeMsg{Type: "WELCOME", ProtocolVersion: Version, SessionID: sid}); err != nil {
			return
		}
		s.logf("observer %s joined (every %d, lanes %v)", sid, sub.Every, sub.Lanes)
		defer s.logf("observer %s left", sid)

		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))
				next, err := readSubscribe(conn)
				if errors.Is(err, errBadSubscribe) {
					continue
				}
				if err != nil {
					return
				}
				sess.sub.Store(&next)
			}
		}()

		for {
			select {
			case <-gone:
				return
			case snap := <-sess.out:
				cur := sess.sub.Load()
				if snap.Frame%uint64(cur.Every) != 0 {
					continue
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteJSON(frameFor(snap, *cur)); err != nil {
					return
				}
			}
		}
	}
}

// readSubscribe reads one message and decodes it as a SUBSCRIBE.
func readSubscribe(conn *websocket.Conn) (SubscribeMsg, error) {
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return SubscribeMsg{}, err
	}
	var sub SubscribeMsg
	if json.Unmarshal(raw, &sub) != nil || sub.Type != "SUBSCRIBE" || sub.ProtocolVersion != Version {
		return SubscribeMsg{}, errBadSubscribe
	}
	normalizeSubscribe(&sub)
	return sub, nil
}

func (s *Server) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Printf(format, args...)
	}
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logf("observer listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
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
