package dispatcher

import (
	"github.com/atomicstack/menu-overlay/internal/logging/events"
	"github.com/atomicstack/menu-overlay/internal/menu"
	"github.com/atomicstack/menu-overlay/internal/protocol"
	uistate "github.com/atomicstack/menu-overlay/internal/ui/state"
)

// Result reports what a command did to the menu.
type Result struct {
	Opened   bool
	Reopened bool
	Moved    bool
	Closed   bool
}

// Changed reports whether the command had any effect.
func (r Result) Changed() bool {
	return r.Opened || r.Reopened || r.Moved || r.Closed
}

// Defaults fill in open requests that leave options unset.
type Defaults struct {
	MaxVisibleItems int
	Align           menu.Align
}

// Dispatcher owns the single menu session and applies host commands to it.
type Dispatcher struct {
	defaults Defaults
	render   uistate.Renderer
	session  *uistate.Session
}

// New returns a dispatcher with no open menu. A nil renderer uses the default.
func New(defaults Defaults, render uistate.Renderer) *Dispatcher {
	return &Dispatcher{defaults: defaults, render: render}
}

// Session returns the open menu, or nil while closed.
func (d *Dispatcher) Session() *uistate.Session {
	return d.session
}

// Handle applies cmd. Commands that cannot apply are ignored.
func (d *Dispatcher) Handle(cmd protocol.Command) Result {
	var res Result
	switch c := cmd.(type) {
	case protocol.Open:
		opts := d.withDefaults(c.Options)
		if d.session != nil {
			d.session.Reopen(opts)
			res.Reopened = true
			events.Menu.Reopen(d.session.Title, headerFont(d.session), len(d.session.Items), d.session.Index, d.session.MaxVisibleItems, d.session.FirstVisible)
			return res
		}
		d.session = uistate.NewSession(opts, d.render)
		res.Opened = true
		events.Menu.Open(d.session.Title, headerFont(d.session), len(d.session.Items), d.session.Index, d.session.MaxVisibleItems, d.session.FirstVisible)
	case protocol.Move:
		if d.session == nil {
			return res
		}
		if d.session.Move(c.Index) {
			res.Moved = true
			events.Menu.Move(d.session.Index, d.session.FirstVisible)
		}
	case protocol.Close:
		if d.session == nil {
			return res
		}
		d.session = nil
		res.Closed = true
		events.Menu.Close()
	}
	return res
}

func (d *Dispatcher) withDefaults(opts menu.Options) menu.Options {
	if opts.MaxVisibleItems <= 0 {
		opts.MaxVisibleItems = d.defaults.MaxVisibleItems
	}
	if _, ok := menu.ParseAlign(string(opts.Align)); !ok {
		opts.Align = d.defaults.Align
	}
	return opts
}

// headerFont is the font family the host asked for. Terminals cannot switch
// fonts, so it is only traced.
func headerFont(s *uistate.Session) string {
	if s.Header == nil {
		return ""
	}
	return s.Header.FontName()
}
