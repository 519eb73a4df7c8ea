package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/model"
)

func newTestSession(id string) *Session {
	return &Session{
		id:        id,
		hub:       newHub(),
		cmdExited: make(chan error, 1),
		status: model.SessionStatus{
			SessionID: id,
			Speed:     1.0,
		},
	}
}

func setupTestServer(t *testing.T, s *Session) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("accept error: %v", err)
			return
		}
		s.handleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func sendFrame(t *testing.T, conn *websocket.Conn, frame interface{}) {
	t.Helper()
	data, err := json.Marshal(frame)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestSessionBroadcastsInitialStatusOnConnect(t *testing.T) {
	s := newTestSession("sess-1")
	server := setupTestServer(t, s)
	conn := dial(t, server)

	frame := readFrame(t, conn)
	assert.Equal(t, "status", frame["type"])
}

func TestSessionPauseThenSeekMatchesDocumentedSequence(t *testing.T) {
	s := newTestSession("sess-2")
	server := setupTestServer(t, s)
	conn := dial(t, server)
	_ = readFrame(t, conn) // initial status on connect

	sendFrame(t, conn, ClientFrame{Type: CommandPause})
	ack := readFrame(t, conn)
	assert.Equal(t, "ack", ack["type"])
	assert.Equal(t, CommandPause, ack["command"])
	status := readFrame(t, conn)
	assert.Equal(t, "status", status["type"])

	sendFrame(t, conn, ClientFrame{Type: CommandSeek, Payload: json.RawMessage(`{"time":3.5}`)})
	ack = readFrame(t, conn)
	assert.Equal(t, CommandSeek, ack["command"])
	status = readFrame(t, conn)
	statusBody := status["status"].(map[string]interface{})
	assert.Equal(t, false, statusBody["playing"])
	assert.Equal(t, 3.5, statusBody["current_time"])
}

func TestSessionBroadcastsToAllConnectedClients(t *testing.T) {
	s := newTestSession("sess-3")
	server := setupTestServer(t, s)
	connA := dial(t, server)
	_ = readFrame(t, connA)
	connB := dial(t, server)
	_ = readFrame(t, connA) // connA sees connB's join broadcast
	_ = readFrame(t, connB)

	sendFrame(t, connA, ClientFrame{Type: CommandPlay})
	ackA := readFrame(t, connA)
	assert.Equal(t, "ack", ackA["type"])
	statusA := readFrame(t, connA)
	assert.Equal(t, "status", statusA["type"])
	statusB := readFrame(t, connB)
	assert.Equal(t, "status", statusB["type"])
}

func TestSessionRejectsUnknownCommand(t *testing.T) {
	s := newTestSession("sess-4")
	server := setupTestServer(t, s)
	conn := dial(t, server)
	_ = readFrame(t, conn)

	sendFrame(t, conn, ClientFrame{Type: "levitate"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
}

func TestSessionRejectsMalformedSeekPayload(t *testing.T) {
	s := newTestSession("sess-5")
	server := setupTestServer(t, s)
	conn := dial(t, server)
	_ = readFrame(t, conn)

	sendFrame(t, conn, ClientFrame{Type: CommandSeek, Payload: json.RawMessage(`{"time":"not-a-number"}`)})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
}

func TestMutateStatusReflectsConnectedClientCount(t *testing.T) {
	s := newTestSession("sess-6")
	s.hub.register(context.Background(), nil)
	s.hub.register(context.Background(), nil)
	snapshot := s.mutateStatus(func(*model.SessionStatus) {})
	assert.Equal(t, 2, snapshot.ConnectedClients)
}

func TestAllocatePortFindsFirstFreePortInWindow(t *testing.T) {
	start := 30000
	blocker, err := net.Listen("tcp", "127.0.0.1:30000")
	require.NoError(t, err)
	defer blocker.Close()

	port, l, err := allocatePort(start, 5)
	require.NoError(t, err)
	defer l.Close()
	assert.NotEqual(t, start, port)
	assert.Less(t, port, start+5)
}

func TestAllocatePortExhaustedWindowReturnsErr(t *testing.T) {
	start := 30100
	width := 3
	var listeners []net.Listener
	for i := 0; i < width; i++ {
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", start+i))
		require.NoError(t, err)
		listeners = append(listeners, l)
	}
	defer func() {
		for _, l := range listeners {
			l.Close()
		}
	}()

	_, _, err := allocatePort(start, width)
	assert.ErrorIs(t, err, ErrNoPortAvailable)
}

func TestAllocatePortEphemeralWhenWidthZero(t *testing.T) {
	port, l, err := allocatePort(0, 0)
	require.NoError(t, err)
	defer l.Close()
	assert.Greater(t, port, 0)
}

func TestRenderWrapperIncludesPortAndSessionID(t *testing.T) {
	code, err := renderWrapper("sess-xyz", 8771)
	require.NoError(t, err)
	assert.Contains(t, code, "8771")
	assert.Contains(t, code, "sess-xyz")
	assert.Contains(t, code, "from scene import MainScene")
}

func TestManagerStopUnknownSessionReturnsErr(t *testing.T) {
	m := NewManager(nil, t.TempDir(), 0, 0)
	err := m.Stop("does-not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerActiveSessionsStartsAtZero(t *testing.T) {
	m := NewManager(nil, t.TempDir(), 0, 0)
	assert.Equal(t, 0, m.ActiveSessions())
}
