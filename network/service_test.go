package network

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTest(t *testing.T, s *Service) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(s.Transport().Handler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + s.config.Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		conn.Close()
		s.Transport().peers.Close()
		srv.Close()
	}
}

func waitPeers(t *testing.T, s *Service, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.PeerCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("peer count = %d, want %d", s.PeerCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServiceBroadcastsSnapshots(t *testing.T) {
	s := NewService(DefaultConfig())
	conn, cleanup := dialTest(t, s)
	defer cleanup()
	waitPeers(t, s, 1)

	s.Publish(&Snapshot{Tick: 42, CordLength: 73.5, Segments: 7, Toggles: map[string]bool{"cord_systems": true}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MsgSnapshot || msg.Payload == nil {
		t.Fatalf("message = %+v, want snapshot", msg)
	}
	if msg.Payload.Tick != 42 || msg.Payload.Segments != 7 || !msg.Payload.Toggles["cord_systems"] {
		t.Errorf("payload = %+v", msg.Payload)
	}
	if msg.Seq != 1 {
		t.Errorf("seq = %d, want 1", msg.Seq)
	}
	if s.Published() != 1 {
		t.Errorf("Published = %d, want 1", s.Published())
	}
}

func TestServiceQueuesToggleCommands(t *testing.T) {
	s := NewService(DefaultConfig())
	conn, cleanup := dialTest(t, s)
	defer cleanup()

	if err := conn.WriteJSON(Message{Type: MsgToggle, Name: "camera_follow"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-s.Commands():
		if name != "camera_follow" {
			t.Errorf("command = %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("command not queued")
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ack Message
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatalf("read ack: %v", err)
	}
	if ack.Type != MsgAck || ack.Name != "camera_follow" {
		t.Errorf("ack = %+v", ack)
	}
}

func TestServiceRejectsMalformedMessages(t *testing.T) {
	s := NewService(DefaultConfig())
	conn, cleanup := dialTest(t, s)
	defer cleanup()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"teleport"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Type != MsgError {
		t.Errorf("reply = %+v, want error", reply)
	}
	select {
	case name := <-s.Commands():
		t.Errorf("unexpected command %q", name)
	default:
	}
}

func TestPublishWithoutPeersIsNoop(t *testing.T) {
	s := NewService(DefaultConfig())
	s.Publish(&Snapshot{Tick: 1})
	if s.Published() != 0 {
		t.Errorf("Published = %d, want 0", s.Published())
	}
}

func TestDisabledServiceStartIsNoop(t *testing.T) {
	s := NewService(DefaultConfig())
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Transport().IsRunning() {
		t.Error("disabled service should not listen")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestTransportStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	s := NewService(cfg)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Transport().Addr() == nil {
		t.Fatal("Addr should be set after Start")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if s.Transport().IsRunning() {
		t.Error("transport still running after Stop")
	}
}

func TestDecode(t *testing.T) {
	if _, err := Decode([]byte(`{"type":"toggle"}`)); err == nil {
		t.Error("toggle without name should fail")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("garbage should fail")
	}
	m, err := Decode([]byte(`{"type":"toggle","name":"cord_systems"}`))
	if err != nil || m.Name != "cord_systems" {
		t.Errorf("Decode = %+v, %v", m, err)
	}
}
