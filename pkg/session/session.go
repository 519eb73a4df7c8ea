package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// Session is one interactive rendering session: a child renderer process
// in presenter mode, a WebSocket hub every client (and the instrumented
// child) connects to, and the live SessionStatus both broadcast and
// reported via Status().
type Session struct {
	id        string
	wsPort    int
	codeFile  string
	tempDir   string
	startedAt time.Time

	hub *hub

	statusMu sync.RWMutex
	status   model.SessionStatus

	listener   net.Listener
	httpServer *http.Server

	cmd       *exec.Cmd
	cmdExited chan error

	stopOnce sync.Once
	onStop   func(id string)
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// WSPort returns the port the session's control server is bound to.
func (s *Session) WSPort() int { return s.wsPort }

// Info returns the data-model projection of the session's current state.
func (s *Session) Info() model.InteractiveSessionInfo {
	return model.InteractiveSessionInfo{
		ID:        s.id,
		WSPort:    s.wsPort,
		CodeFile:  s.codeFile,
		StartedAt: s.startedAt,
		Status:    s.Status(),
	}
}

// Status returns a snapshot of the session's current SessionStatus.
func (s *Session) Status() model.SessionStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Session) mutateStatus(fn func(*model.SessionStatus)) model.SessionStatus {
	s.statusMu.Lock()
	fn(&s.status)
	s.status.ConnectedClients = s.hub.count()
	snapshot := s.status
	s.statusMu.Unlock()
	return snapshot
}

// serve runs the session's HTTP/WebSocket acceptor loop until the
// listener is closed by teardown. Intended to be run in its own
// goroutine.
func (s *Session) serve() {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleUpgrade)
	s.httpServer = &http.Server{Handler: mux}
	if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		slog.Error("session control server exited", "session_id", s.id, "error", err)
	}
}

func (s *Session) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("session websocket upgrade failed", "session_id", s.id, "error", err)
		return
	}
	s.handleConnection(r.Context(), conn)
}

// handleConnection manages one WebSocket client for the lifetime of its
// connection. Grounded on the teacher's ConnectionManager.HandleConnection
// read loop.
func (s *Session) handleConnection(parentCtx context.Context, ws *websocket.Conn) {
	c := s.hub.register(parentCtx, ws)
	defer func() {
		s.hub.unregister(c)
		snapshot := s.mutateStatus(func(*model.SessionStatus) {})
		s.hub.broadcast(statusFrame{Type: "status", Status: snapshot})
	}()

	snapshot := s.mutateStatus(func(*model.SessionStatus) {})
	s.hub.broadcast(statusFrame{Type: "status", Status: snapshot})

	for {
		_, data, err := ws.Read(c.ctx)
		if err != nil {
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.hub.sendJSON(c, errorFrame{Type: "error", Message: "malformed frame"})
			continue
		}

		s.handleFrame(c, frame)
	}
}

func (s *Session) handleFrame(c *connection, frame ClientFrame) {
	switch frame.Type {
	case CommandPlay:
		snap := s.mutateStatus(func(st *model.SessionStatus) { st.Playing = true })
		s.accept(c, frame.Type, snap)
	case CommandPause:
		snap := s.mutateStatus(func(st *model.SessionStatus) { st.Playing = false })
		s.accept(c, frame.Type, snap)
	case CommandSeek:
		var p seekPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			s.hub.sendJSON(c, errorFrame{Type: "error", Message: "seek requires a numeric time"})
			return
		}
		snap := s.mutateStatus(func(st *model.SessionStatus) { st.CurrentTime = p.Time })
		s.accept(c, frame.Type, snap)
	case CommandSpeed:
		var p speedPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil || p.Speed <= 0 {
			s.hub.sendJSON(c, errorFrame{Type: "error", Message: "speed requires a positive number"})
			return
		}
		snap := s.mutateStatus(func(st *model.SessionStatus) { st.Speed = p.Speed })
		s.accept(c, frame.Type, snap)
	case CommandCamera, CommandScreenshot, CommandReload:
		// No SessionStatus field changes; the command is acknowledged and
		// broadcast so the instrumented child (itself a hub connection)
		// can act on it.
		snap := s.mutateStatus(func(*model.SessionStatus) {})
		s.accept(c, frame.Type, snap)
	case CommandStop:
		s.hub.sendJSON(c, ackFrame{Type: "ack", Command: frame.Type})
		s.stop("stop command")
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownCommand, frame.Type)
		s.hub.sendJSON(c, errorFrame{Type: "error", Message: err.Error()})
	}
}

// accept acknowledges a command to its sender and broadcasts the updated
// status to every connection, matching the documented two-frame sequence
// (ack to sender, status to all).
func (s *Session) accept(c *connection, command string, snapshot model.SessionStatus) {
	s.hub.sendJSON(c, ackFrame{Type: "ack", Command: command})
	s.hub.broadcast(statusFrame{Type: "status", Status: snapshot})
}

// stop runs the teardown sequence exactly once: close client connections,
// stop the control server, terminate the child, delete temp files,
// deregister from the owning manager's table.
func (s *Session) stop(reason string) {
	s.stopOnce.Do(func() {
		slog.Info("interactive session stopping", "session_id", s.id, "reason", reason)

		s.hub.closeAll()

		if s.httpServer != nil {
			_ = s.httpServer.Close()
		}

		stopChild(s.cmd, s.cmdExited)

		if err := os.RemoveAll(s.tempDir); err != nil {
			slog.Warn("session: failed to remove temp dir", "session_id", s.id, "error", err)
		}

		if s.onStop != nil {
			s.onStop(s.id)
		}

		slog.Info("session:stopped", "session_id", s.id)
	})
}
