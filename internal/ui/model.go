package ui

import (
	"reflect"

	"github.com/atomicstack/menu-overlay/internal/backend"
	"github.com/atomicstack/menu-overlay/internal/data/dispatcher"
	"github.com/atomicstack/menu-overlay/internal/protocol"
	"github.com/atomicstack/menu-overlay/internal/theme"
	"github.com/atomicstack/menu-overlay/internal/ui/command"
	uistate "github.com/atomicstack/menu-overlay/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the menu overlay.
type Model struct {
	dispatcher  *dispatcher.Dispatcher
	feed        *backend.Feed
	bus         *command.Bus
	keys        keyMap
	styles      *theme.Styles
	interactive bool

	menuWidth  int
	termWidth  int
	termHeight int

	jumpQuery string

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a model around d. width is the menu width in cells (0 uses
// the terminal width); feed may be nil when commands arrive another way.
func NewModel(width int, interactive bool, styles *theme.Styles, feed *backend.Feed, d *dispatcher.Dispatcher) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	if d == nil {
		d = dispatcher.New(dispatcher.Defaults{}, nil)
	}
	if width < 0 {
		width = 0
	}
	m := &Model{
		dispatcher:  d,
		feed:        feed,
		bus:         command.New(),
		keys:        defaultKeyMap(),
		styles:      styles,
		interactive: interactive,
		menuWidth:   width,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	return waitForHostEvent(m.feed)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Session returns the open menu, or nil while closed.
func (m *Model) Session() *uistate.Session {
	return m.dispatcher.Session()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(hostEventMsg{}):      m.handleHostEventMsg,
		reflect.TypeOf(hostDoneMsg{}):       m.handleHostDoneMsg,
		reflect.TypeOf(command.Msg{}):       m.handleCommandMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// apply runs cmd through the dispatcher. Opening or closing the menu resets
// any pending jump query.
func (m *Model) apply(cmd protocol.Command) dispatcher.Result {
	res := m.dispatcher.Handle(cmd)
	if res.Opened || res.Reopened || res.Closed {
		m.jumpQuery = ""
	}
	return res
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.termWidth = resize.Width
	m.termHeight = resize.Height
	return nil
}
