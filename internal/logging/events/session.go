package events

import "github.com/atomicstack/tmux-ui/internal/logging"

type SessionTracer struct{}

type sessionReason string

const SessionReasonEscape sessionReason = "escape"

var Session = SessionTracer{}

func (SessionTracer) NewPrompt(existing int) {
	logging.Trace("session.new.prompt", map[string]interface{}{"existing": existing})
}

func (SessionTracer) RenamePrompt(target string) {
	logging.Trace("session.rename.prompt", map[string]interface{}{"target": target})
}

func (SessionTracer) Switch(target string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target})
}

func (SessionTracer) Attach(target string) {
	logging.Trace("session.attach", map[string]interface{}{"target": target})
}

func (SessionTracer) Detach(target string) {
	logging.Trace("session.detach", map[string]interface{}{"target": target})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) Create(name string) {
	logging.Trace("session.new.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) Cancel(mode string, reason sessionReason) {
	logging.Trace("session.prompt.cancel", map[string]interface{}{"mode": mode, "reason": string(reason)})
}

func (SessionTracer) Refresh(count int) {
	logging.Trace("session.refresh", map[string]interface{}{"count": count})
}
