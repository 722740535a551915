package observer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"neoncity/internal/city"
	"neoncity/internal/config"
)

func testLayout() city.Layout {
	cfg := config.Default()
	l := city.Layout{Seed: 7, Corridor: cfg.Corridor, Lanes: cfg.Traffic.Lanes}
	for i := 0; i < 200; i++ {
		l.Buildings = append(l.Buildings, city.BuildingRecord{
			ID: uint64(i + 1), X: float32(i * 30), Z: 60, Height: 40, Width: 10, Depth: 8, Variant: "glass-blue",
		})
	}
	return l
}

func testSnapshot(frame uint64) city.FrameSnapshot {
	return city.FrameSnapshot{
		Frame:   frame,
		Elapsed: float64(frame) / 60,
		Vehicles: []city.VehicleState{
			{ID: 1, Lane: "x1", X: -600, Z: -2},
			{ID: 2, Lane: "z1", X: 10, Z: 300},
		},
		SignY:   11.8,
		SignYaw: 0.4,
	}
}

func dial(t *testing.T, srv *httptest.Server, sub SubscribeMsg) (*websocket.Conn, WelcomeMsg) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if err := conn.WriteJSON(sub); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	var welcome WelcomeMsg
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&welcome); err != nil {
		t.Fatalf("Expected WELCOME, got error %v", err)
	}
	return conn, welcome
}

func TestLayoutEndpoint(t *testing.T) {
	s := NewServer(NewHub(), testLayout(), nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/layout")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !resp.Uncompressed {
		t.Errorf("Expected a gzip encoded layout")
	}
	var got LayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.ProtocolVersion != Version || got.Layout.Seed != 7 || len(got.Layout.Buildings) != 200 {
		t.Errorf("Unexpected layout: version %s seed %d buildings %d", got.ProtocolVersion, got.Layout.Seed, len(got.Layout.Buildings))
	}
}

func TestLayoutRejectsPost(t *testing.T) {
	s := NewServer(NewHub(), testLayout(), nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/layout", "application/json", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestFrameStream(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer(hub, testLayout(), nil).Handler())
	defer srv.Close()

	conn, welcome := dial(t, srv, SubscribeMsg{Type: "SUBSCRIBE", ProtocolVersion: Version})
	defer conn.Close()
	if welcome.Type != "WELCOME" || welcome.SessionID == "" {
		t.Fatalf("Unexpected welcome %+v", welcome)
	}
	if hub.Sessions() != 1 {
		t.Errorf("Expected 1 session, got %d", hub.Sessions())
	}

	hub.Publish(testSnapshot(3))

	var frame FrameMsg
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("Expected FRAME, got error %v", err)
	}
	if frame.Type != "FRAME" || frame.Frame != 3 || len(frame.Vehicles) != 2 {
		t.Errorf("Unexpected frame %+v", frame)
	}
	if frame.Sign.Y != 11.8 {
		t.Errorf("Expected sign y 11.8, got %f", frame.Sign.Y)
	}
}

func TestFrameStreamFilters(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer(hub, testLayout(), nil).Handler())
	defer srv.Close()

	conn, _ := dial(t, srv, SubscribeMsg{Type: "SUBSCRIBE", ProtocolVersion: Version, Every: 2, Lanes: []string{"z1"}})
	defer conn.Close()

	for f := uint64(1); f <= 4; f++ {
		hub.Publish(testSnapshot(f))
	}

	var got []uint64
	for i := 0; i < 2; i++ {
		var frame FrameMsg
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("Expected FRAME, got error %v", err)
		}
		if len(frame.Vehicles) != 1 || frame.Vehicles[0].Lane != "z1" {
			t.Errorf("Expected only lane z1, got %+v", frame.Vehicles)
		}
		got = append(got, frame.Frame)
	}
	if fmt.Sprint(got) != "[2 4]" {
		t.Errorf("Expected frames [2 4], got %v", got)
	}
}

func TestBadSubscribeClosed(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer(hub, testLayout(), nil).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	_ = conn.WriteJSON(SubscribeMsg{Type: "SUBSCRIBE", ProtocolVersion: "9.9"})
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("Expected a policy violation close, got %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Sessions() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.Sessions() != 0 {
		t.Errorf("Expected no session for a bad handshake, got %d", hub.Sessions())
	}
}

func TestHubDropsWhenFull(t *testing.T) {
	hub := NewHub()
	hub.join("slow", SubscribeMsg{Every: 1})

	for f := uint64(1); f <= subscriberBuffer+5; f++ {
		hub.Publish(testSnapshot(f))
	}
	if hub.Dropped() != 5 {
		t.Errorf("Expected 5 dropped frames, got %d", hub.Dropped())
	}
	if hub.Published() != subscriberBuffer+5 {
		t.Errorf("Expected %d published, got %d", subscriberBuffer+5, hub.Published())
	}

	hub.leave("slow")
	if hub.Sessions() != 0 {
		t.Errorf("Expected no sessions after leave")
	}
}

func TestIsLoopbackRemote(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"127.0.0.1:5000", true},
		{"[::1]:5000", true},
		{"10.0.0.4:5000", false},
		{"garbage", false},
	}
	for _, tc := range tests {
		if got := isLoopbackRemote(tc.addr); got != tc.want {
			t.Errorf("isLoopbackRemote(%q): expected %v, got %v", tc.addr, tc.want, got)
		}
	}
}

func TestResubscribeChangesFilter(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer(hub, testLayout(), nil).Handler())
	defer srv.Close()

	conn, _ := dial(t, srv, SubscribeMsg{Type: "SUBSCRIBE", ProtocolVersion: Version, Lanes: []string{"x1"}})
	defer conn.Close()

	_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
	if err := conn.WriteJSON(SubscribeMsg{Type: "SUBSCRIBE", ProtocolVersion: Version, Lanes: []string{"z1"}}); err != nil {
		t.Fatalf("Resubscribe failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Publish(testSnapshot(1))
		var frame FrameMsg
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("Expected FRAME, got error %v", err)
		}
		if len(frame.Vehicles) == 1 && frame.Vehicles[0].Lane == "z1" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Expected the new lane filter to apply")
}
