package events

import "github.com/atomicstack/menu-overlay/internal/logging"

type MenuTracer struct{}

type CommandTracer struct{}

type KeyTracer struct{}

var (
	Menu    = MenuTracer{}
	Command = CommandTracer{}
	Key     = KeyTracer{}
)

func (MenuTracer) Open(title, font string, items, index, maxVisible, firstVisible int) {
	logging.Trace("menu.open", map[string]interface{}{
		"title":        title,
		"font":         font,
		"items":        items,
		"index":        index,
		"maxVisible":   maxVisible,
		"firstVisible": firstVisible,
	})
}

func (MenuTracer) Reopen(title, font string, items, index, maxVisible, firstVisible int) {
	logging.Trace("menu.reopen", map[string]interface{}{
		"title":        title,
		"font":         font,
		"items":        items,
		"index":        index,
		"maxVisible":   maxVisible,
		"firstVisible": firstVisible,
	})
}

func (MenuTracer) Move(index, firstVisible int) {
	logging.Trace("menu.move", map[string]interface{}{"index": index, "firstVisible": firstVisible})
}

func (MenuTracer) Close() {
	logging.Trace("menu.close", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, wire string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "wire": wire})
}

func (KeyTracer) Jump(query string, index int) {
	logging.Trace("key.jump", map[string]interface{}{"query": query, "index": index})
}
