package session

import (
	"bytes"
	"fmt"
	"text/template"
)

// wrapperTemplate generates session_wrapper.py. Per the redesign note
// this repo implements instead of the in-place prologue injection: the
// wrapper is a separate module that imports the user's generated scene
// unmodified and opens the WebSocket control connection itself, so the
// generated scene code is never textually rewritten.
var wrapperTemplate = template.Must(template.New("session_wrapper").Parse(`
# Generated wrapper. Imports and renders the user scene, and puts commands
# received over a WebSocket connection back to the session manager onto
# command_queue; the render loop itself does not read that queue.
import json
import queue
import threading

import websocket as ws_client

from scene import MainScene

WS_URL = "ws://127.0.0.1:{{.Port}}/"

command_queue = queue.Queue()


def _on_message(_ws, message):
    try:
        frame = json.loads(message)
    except ValueError:
        return
    command_queue.put(frame)


def _on_open(_ws):
    _ws.send(json.dumps({"type": "hello", "session_id": "{{.SessionID}}"}))


def _run_client():
    client = ws_client.WebSocketApp(WS_URL, on_message=_on_message, on_open=_on_open)
    client.run_forever()


def start_controller():
    thread = threading.Thread(target=_run_client, daemon=True)
    thread.start()
    return command_queue


if __name__ == "__main__":
    commands = start_controller()
    scene = MainScene()
    scene.render()
`))

type wrapperVars struct {
	Port      int
	SessionID string
}

// renderWrapper fills in wrapperTemplate for one session.
func renderWrapper(sessionID string, port int) (string, error) {
	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, wrapperVars{Port: port, SessionID: sessionID}); err != nil {
		return "", fmt.Errorf("session: rendering wrapper template: %w", err)
	}
	return buf.String(), nil
}
