package events

import "github.com/atomicstack/tmux-ui/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type RegistryTracer struct{}

var (
	UI       = UITracer{}
	Action   = ActionTracer{}
	Registry = RegistryTracer{}
)

func (UITracer) Mode(from, to string) {
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": index})
}

func (UITracer) Key(mode, key string) {
	logging.Trace("ui.key", map[string]interface{}{"mode": mode, "key": key})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (RegistryTracer) Command(args []string) {
	logging.Trace("registry.command", map[string]interface{}{"args": args})
}

func (RegistryTracer) Failure(args []string, err error) {
	if err == nil {
		return
	}
	logging.Trace("registry.failure", map[string]interface{}{"args": args, "error": err.Error()})
}
