package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/pelayanandata/portal-go/models"
)

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func dialHub(t *testing.T, hub *RequestHub, userID uint, staff bool) *gorilla.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Serve(conn, userID, staff)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *gorilla.Conn) RequestEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var event RequestEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return event
}

func TestHubRoutesEventsByOwnership(t *testing.T) {
	hub := NewRequestHub()

	owner := dialHub(t, hub, 3, false)
	staff := dialHub(t, hub, 9, true)
	stranger := dialHub(t, hub, 4, false)

	// registration happens on the server goroutine after the dial returns
	waitForClients(t, hub, 3)

	hub.NotifyRequest(models.DataRequest{
		ID:          7,
		RequesterID: 3,
		RequestType: models.RequestTypeInformasi,
		Status:      models.RequestStatusBillingIssued,
	})

	for name, conn := range map[string]*gorilla.Conn{"owner": owner, "staff": staff} {
		event := readEvent(t, conn)
		if event.RequestID != 7 || event.Status != models.RequestStatusBillingIssued {
			t.Errorf("%s got %+v", name, event)
		}
	}

	// the stranger must receive nothing
	stranger.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := stranger.ReadMessage(); err == nil {
		t.Error("stranger received a foreign request event")
	}
}

func waitForClients(t *testing.T, hub *RequestHub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.Lock()
		count := len(hub.clients)
		hub.mu.Unlock()
		if count == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("clients never reached %d", n)
}
