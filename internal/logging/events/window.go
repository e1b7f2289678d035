package events

import "github.com/atomicstack/tmux-ui/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Create(session, name string) {
	logging.Trace("window.new", map[string]interface{}{"session": session, "name": name})
}

func (WindowTracer) Kill(target string) {
	logging.Trace("window.kill", map[string]interface{}{"target": target})
}
