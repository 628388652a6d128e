package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pelayanandata/portal-go/models"
)

// RequestEvent is what subscribers receive whenever a request transitions.
// Only the lifecycle-relevant fields go over the wire, never the full row.
type RequestEvent struct {
	Type        string               `json:"type"`
	RequestID   uint                 `json:"request_id"`
	RequesterID uint                 `json:"requester_id"`
	RequestType models.RequestType   `json:"request_type"`
	Status      models.RequestStatus `json:"status"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uint
	staff  bool
}

// RequestHub fans lifecycle events out to connected clients. Staff sessions
// see every request; requester sessions only see their own.
type RequestHub struct {
	mu      sync.Mutex
	clients map[*client]bool
}

func NewRequestHub() *RequestHub {
	return &RequestHub{clients: make(map[*client]bool)}
}

// Serve owns the connection until the peer disconnects. The write pump runs
// on its own goroutine; the read loop only exists to notice the close.
func (h *RequestHub) Serve(conn *websocket.Conn, userID uint, staff bool) {
	cl := &client{
		conn:   conn,
		send:   make(chan []byte, 32),
		userID: userID,
		staff:  staff,
	}

	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()

	go func() {
		defer conn.Close()
		for msg := range cl.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// the broadcast side may already have dropped this client
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
}

// NotifyRequest implements the engine's notifier. Slow clients are dropped
// rather than blocking the broadcast.
func (h *RequestHub) NotifyRequest(req models.DataRequest) {
	event := RequestEvent{
		Type:        "REQUEST_UPDATED",
		RequestID:   req.ID,
		RequesterID: req.RequesterID,
		RequestType: req.RequestType,
		Status:      req.Status,
		UpdatedAt:   req.UpdatedAt,
	}
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("request event marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		if !cl.staff && cl.userID != req.RequesterID {
			continue
		}
		select {
		case cl.send <- msg:
		default:
			delete(h.clients, cl)
			close(cl.send)
			cl.conn.Close()
		}
	}
}
