package session

import (
	"fmt"
	"net"
)

// DefaultPortWindowStart and DefaultPortWindowWidth give the documented
// default: probe ten ports starting at 8765. A session manager configured
// with a wider window (or width 0, meaning "ask the OS for an ephemeral
// port") is the escape hatch for more than ten concurrent sessions.
const (
	DefaultPortWindowStart = 8765
	DefaultPortWindowWidth = 10
)

// allocatePort probes [start, start+width) in order and returns the first
// port it can bind, along with the open listener (the caller owns it and
// must close it when the session's WS server is torn down). width <= 0
// asks the OS for an ephemeral port instead of scanning a fixed window.
func allocatePort(start, width int) (int, net.Listener, error) {
	if width <= 0 {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return 0, nil, fmt.Errorf("session: ephemeral port bind: %w", err)
		}
		return l.Addr().(*net.TCPAddr).Port, l, nil
	}

	for port := start; port < start+width; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			continue
		}
		return port, l, nil
	}
	return 0, nil, ErrNoPortAvailable
}
