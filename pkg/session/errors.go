package session

import "errors"

// ErrNoPortAvailable is returned when every port in the configured window
// is already bound.
var ErrNoPortAvailable = errors.New("session: no port available in window")

// ErrSessionNotFound is returned by Manager.Stop/Get for an unknown id.
var ErrSessionNotFound = errors.New("session: not found")

// ErrUnknownCommand is returned when a client frame's type isn't one of
// the known commands.
var ErrUnknownCommand = errors.New("session: unknown command")
