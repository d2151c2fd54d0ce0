package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/freelancenexus/nexus-go/src/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialPair gives both ends of a live websocket connection.
func dialPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	serverCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverCh:
	case <-time.After(time.Second):
		t.Fatal("server connection never arrived")
	}
	t.Cleanup(func() { server.Close() })
	return server, client
}

func TestHubSend(t *testing.T) {
	hub := ws.NewHub()
	server, client := dialPair(t)

	hub.Register(3, server)
	if hub.ConnectionCount(3) != 1 {
		t.Fatalf("expected 1 connection, got %d", hub.ConnectionCount(3))
	}

	hub.Send(3, map[string]string{"title": "Proposal accepted"})

	client.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload["title"] != "Proposal accepted" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestHubFanOut(t *testing.T) {
	hub := ws.NewHub()
	serverA, clientA := dialPair(t)
	serverB, clientB := dialPair(t)

	hub.Register(3, serverA)
	hub.Register(3, serverB)
	if hub.ConnectionCount(3) != 2 {
		t.Fatalf("expected 2 connections, got %d", hub.ConnectionCount(3))
	}

	hub.Send(3, map[string]string{"title": "hello"})

	for _, client := range []*websocket.Conn{clientA, clientB} {
		client.SetReadDeadline(time.Now().Add(time.Second))
		if _, _, err := client.ReadMessage(); err != nil {
			t.Fatalf("read failed: %v", err)
		}
	}
}

func TestHubSendToStranger(t *testing.T) {
	hub := ws.NewHub()
	server, client := dialPair(t)
	hub.Register(3, server)

	// Recipient 7 has no connections; nothing must reach recipient 3.
	hub.Send(7, map[string]string{"title": "not yours"})

	client.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Fatal("expected no message for another recipient")
	}
}

func TestHubDropsDeadConnections(t *testing.T) {
	hub := ws.NewHub()
	server, client := dialPair(t)

	hub.Register(3, server)
	client.Close()
	server.Close()

	// The write fails against the closed socket and the registry
	// self-heals.
	hub.Send(3, map[string]string{"title": "into the void"})
	if hub.ConnectionCount(3) != 0 {
		t.Fatalf("expected the dead connection to be dropped, got %d", hub.ConnectionCount(3))
	}
}

func TestHubUnregister(t *testing.T) {
	hub := ws.NewHub()
	server, _ := dialPair(t)

	hub.Register(3, server)
	hub.Unregister(3, server)
	if hub.ConnectionCount(3) != 0 {
		t.Fatalf("expected 0 connections, got %d", hub.ConnectionCount(3))
	}
}
