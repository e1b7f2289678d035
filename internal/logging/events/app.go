package events

import "github.com/atomicstack/tmux-ui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Attach(target string) {
	logging.Trace("app.attach", map[string]interface{}{"target": target})
}

func (AppTracer) Exit(attachTarget string, err error) {
	payload := map[string]interface{}{"attach": attachTarget}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
