package events

import "github.com/atomicstack/menu-overlay/internal/logging"

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) Message(command, raw string) {
	logging.Trace("host.message", map[string]interface{}{"command": command, "raw": raw})
}

// Ignored records a message that had no effect on the menu.
func (HostTracer) Ignored(raw, reason string) {
	logging.Trace("host.ignored", map[string]interface{}{"raw": raw, "reason": reason})
}

func (HostTracer) Done(lines, rejected int64, err error) {
	payload := map[string]interface{}{"lines": lines, "rejected": rejected}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("host.done", payload)
}
