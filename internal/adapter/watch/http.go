package watch

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Server exposes the hub over plain net/http: GET /watch upgrades to a
// websocket, GET /state answers with the latest frame for pollers that
// cannot hold a socket open.
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewServer(hub *Hub) *Server {
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", s.handleWatch)
	mux.HandleFunc("/state", s.handleState)
	return mux
}

func (s *Server) handleWatch(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	c := &client{send: make(chan []byte, clientBuffer)}
	s.hub.register(c)

	go func() {
		defer conn.Close()
		for raw := range c.send {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				s.hub.unregister(c)
				return
			}
		}
	}()

	// Watchers only listen. Reading until error notices the close
	// handshake and dead peers.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.hub.unregister(c)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(time.Second))
}

func (s *Server) handleState(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	if worldID := r.URL.Query().Get("world"); worldID != "" {
		raw, ok := s.hub.Latest(worldID)
		if !ok {
			http.Error(rw, `{"error":"no frame published for world"}`, http.StatusNotFound)
			return
		}
		_, _ = rw.Write(raw)
		return
	}
	out, err := json.Marshal(s.hub.LatestAll())
	if err != nil {
		http.Error(rw, `{"error":"encode state"}`, http.StatusInternalServerError)
		return
	}
	_, _ = rw.Write(out)
}
