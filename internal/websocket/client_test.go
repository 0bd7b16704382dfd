// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/filelens/internal/models"
)

// setupWebSocketServer serves hub clients the way the API handler does.
func setupWebSocketServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		client := NewClient(hub, conn)
		if !hub.AddClient(client) {
			_ = conn.Close()
			return
		}
		client.Start()
	}))
	t.Cleanup(server.Close)
	return server
}

func dialWebSocket(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

type wireMessage struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func readMessage(t *testing.T, conn *websocket.Conn) wireMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg wireMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestNewClient_UniqueIDs(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	a := NewClient(hub, nil)
	b := NewClient(hub, nil)
	if a.ID() >= b.ID() {
		t.Errorf("IDs not increasing: %d, %d", a.ID(), b.ID())
	}
	if cap(a.send) != sendBufferSize {
		t.Errorf("send buffer = %d, want %d", cap(a.send), sendBufferSize)
	}
}

func TestClient_Enqueue(t *testing.T) {
	t.Parallel()

	c := createTestClient(NewHub(), 1)
	if !c.Enqueue(Message{Type: MessageTypePong}) {
		t.Fatal("first Enqueue should succeed")
	}
	if c.Enqueue(Message{Type: MessageTypePong}) {
		t.Error("Enqueue on a full buffer should report false")
	}
}

func TestClient_ReceivesStateBroadcast(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := setupWebSocketServer(t, hub)
	conn := dialWebSocket(t, server)
	waitForCount(t, hub, 1)

	hub.BroadcastState(models.UIState{
		Filename: "clip.webm",
		Result:   &models.AnalysisResult{Filename: "clip.webm", FileType: "webm"},
		Seq:      4,
	})

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeState {
		t.Fatalf("type = %q", msg.Type)
	}
	if msg.Data["filename"] != "clip.webm" || msg.Data["seq"] != float64(4) {
		t.Errorf("data = %v", msg.Data)
	}
	if _, ok := msg.Data["classification"]; !ok {
		t.Errorf("classification missing: %v", msg.Data)
	}
}

func TestClient_PingPong(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := setupWebSocketServer(t, hub)
	conn := dialWebSocket(t, server)

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != MessageTypePong {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypePong)
	}
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := setupWebSocketServer(t, hub)
	conn := dialWebSocket(t, server)
	waitForCount(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()
	waitForCount(t, hub, 0)
}

func TestClient_Constants(t *testing.T) {
	t.Parallel()

	if pingPeriod >= pongWait {
		t.Errorf("pingPeriod %v must be shorter than pongWait %v", pingPeriod, pongWait)
	}
}
