package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/renderer"
)

// Manager owns the table of live interactive sessions and the port
// window they're allocated from. Adapted from the teacher's
// pkg/session.Manager (mutex-guarded map, uuid-keyed entries,
// not-found sentinel) generalized from an in-memory chat-session table
// to a table of interactive rendering sessions, each with its own
// WebSocket hub.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	portStart int
	portWidth int
	tempRoot  string

	gl renderer.Renderer
}

// NewManager builds a Manager. gl is the GLRenderer used to spawn the
// presenter-mode child: interactive sessions require GPU shaders and a
// display, so the manager always drives the GL renderer, never Standard.
// portStart/portWidth of 0/0 fall back to DefaultPortWindowStart/Width.
func NewManager(gl renderer.Renderer, tempRoot string, portStart, portWidth int) *Manager {
	if portStart == 0 && portWidth == 0 {
		portStart, portWidth = DefaultPortWindowStart, DefaultPortWindowWidth
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		portStart: portStart,
		portWidth: portWidth,
		tempRoot:  tempRoot,
		gl:        gl,
	}
}

// Start allocates a port, writes the scene and wrapper files, spawns the
// GL renderer in presenter mode against the wrapper, and hosts the
// session's WebSocket control server. The returned Session is already
// registered in the manager's table.
func (m *Manager) Start(ctx context.Context, job model.Job, code string) (*Session, error) {
	id := uuid.New().String()

	port, listener, err := allocatePort(m.portStart, m.portWidth)
	if err != nil {
		return nil, err
	}

	tempDir := filepath.Join(m.tempRoot, "sessions", id)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("session: creating temp dir: %w", err)
	}

	scenePath := filepath.Join(tempDir, "scene.py")
	if err := os.WriteFile(scenePath, []byte(code), 0o644); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("session: writing scene file: %w", err)
	}

	wrapperCode, err := renderWrapper(id, port)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	wrapperPath := filepath.Join(tempDir, "session_wrapper.py")
	if err := os.WriteFile(wrapperPath, []byte(wrapperCode), 0o644); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("session: writing wrapper file: %w", err)
	}

	cmdSpec := m.gl.GetCommand(renderer.RenderOptions{
		Code:        code,
		Quality:     job.Quality,
		TempDir:     tempDir,
		Interactive: true,
	})
	if len(cmdSpec.Args) > 0 {
		// The wrapper module replaces scene.py as the entry point so the
		// generated scene is imported, not textually rewritten.
		cmdSpec.Args[0] = "session_wrapper.py"
	}

	cmd := exec.CommandContext(ctx, cmdSpec.Program, cmdSpec.Args...)
	cmd.Dir = tempDir
	cmd.Env = os.Environ()

	s := &Session{
		id:        id,
		wsPort:    port,
		codeFile:  scenePath,
		tempDir:   tempDir,
		startedAt: time.Now(),
		hub:       newHub(),
		listener:  listener,
		cmd:       cmd,
		cmdExited: make(chan error, 1),
		onStop:    m.remove,
		status: model.SessionStatus{
			SessionID: id,
			Speed:     1.0,
		},
	}

	if err := cmd.Start(); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("session: starting presenter process: %w", err)
	}

	go func() {
		s.cmdExited <- cmd.Wait()
		s.stop("child process exit")
	}()

	go s.serve()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	slog.Info("interactive session started", "session_id", id, "ws_port", port)
	return s, nil
}

// Get returns the live session for id, if any.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Stop tears down the named session. Idempotent.
func (m *Manager) Stop(id string) error {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.stop("explicit stop")
	return nil
}

// remove deregisters a session from the table once its teardown has run.
func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// ActiveSessions reports how many interactive sessions are currently live.
func (m *Manager) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ShutdownAll tears down every live session, used on process-level
// shutdown alongside the event bus and job store.
func (m *Manager) ShutdownAll() {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		s.stop("process shutdown")
	}
}
