// Package protocol decodes the host's control messages. Each message is a
// JSON array whose first element names the command and whose remaining
// elements are that command's arguments.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/atomicstack/menu-overlay/internal/menu"
)

var (
	ErrNotArray       = errors.New("message is not an array")
	ErrEmpty          = errors.New("message has no command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
)

// Command is one decoded host instruction: Open, Move or Close.
type Command interface {
	Name() string
}

// Open shows the menu, or refreshes it when already open.
type Open struct {
	Options menu.Options
}

// Move selects the item at Index.
type Move struct {
	Index int
}

// Close hides the menu.
type Close struct{}

func (Open) Name() string  { return "open" }
func (Move) Name() string  { return "move" }
func (Close) Name() string { return "close" }

type openArgs struct {
	Header          *menu.Header `json:"header"`
	Title           *string      `json:"title"`
	Items           *[]menu.Item `json:"items"`
	Index           *float64     `json:"index"`
	ItemIndex       *float64     `json:"itemIndex"`
	MaxVisibleItems *float64     `json:"maxVisibleItems"`
	Align           *string      `json:"align"`
}

// Decode parses a single message.
func Decode(data []byte) (Command, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	if len(parts) == 0 {
		return nil, ErrEmpty
	}
	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return nil, fmt.Errorf("%w: command name: %v", ErrBadArgument, err)
	}
	args := parts[1:]
	switch name {
	case "open":
		return decodeOpen(args)
	case "move":
		return decodeMove(args)
	case "close":
		return Close{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func decodeOpen(args []json.RawMessage) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: open needs an options object", ErrBadArgument)
	}
	var raw openArgs
	if err := json.Unmarshal(args[0], &raw); err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrBadArgument, err)
	}
	if raw.Items == nil {
		return nil, fmt.Errorf("%w: open: items missing", ErrBadArgument)
	}
	opts := menu.Options{
		Header: raw.Header,
		Items:  *raw.Items,
	}
	if raw.Title != nil {
		opts.Title = *raw.Title
	}
	index := raw.Index
	if index == nil {
		index = raw.ItemIndex
	}
	if index != nil {
		v, err := toInt(*index)
		if err != nil {
			return nil, fmt.Errorf("%w: open index: %v", ErrBadArgument, err)
		}
		opts.Index = v
	}
	if raw.MaxVisibleItems != nil {
		v, err := toInt(*raw.MaxVisibleItems)
		if err != nil {
			return nil, fmt.Errorf("%w: open maxVisibleItems: %v", ErrBadArgument, err)
		}
		opts.MaxVisibleItems = v
	}
	if raw.Align != nil {
		opts.Align = menu.Align(*raw.Align)
	}
	return Open{Options: opts}, nil
}

func decodeMove(args []json.RawMessage) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: move needs an index", ErrBadArgument)
	}
	var f float64
	if err := json.Unmarshal(args[0], &f); err != nil {
		return nil, fmt.Errorf("%w: move: %v", ErrBadArgument, err)
	}
	v, err := toInt(f)
	if err != nil {
		return nil, fmt.Errorf("%w: move: %v", ErrBadArgument, err)
	}
	return Move{Index: v}, nil
}

func toInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int(f), nil
}

// Encode renders a command in wire form. It is the inverse of Decode and is
// used by local key navigation and tests.
func Encode(cmd Command) ([]byte, error) {
	switch c := cmd.(type) {
	case Open:
		return json.Marshal([]interface{}{c.Name(), encodeOpen(c.Options)})
	case Move:
		return json.Marshal([]interface{}{c.Name(), c.Index})
	case Close:
		return json.Marshal([]interface{}{c.Name()})
	case nil:
		return nil, fmt.Errorf("%w: nil command", ErrUnknownCommand)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func encodeOpen(opts menu.Options) map[string]interface{} {
	items := opts.Items
	if items == nil {
		items = []menu.Item{}
	}
	out := map[string]interface{}{
		"items": items,
		"index": opts.Index,
	}
	if opts.Header != nil {
		out["header"] = opts.Header
	}
	if opts.Title != "" {
		out["title"] = opts.Title
	}
	if opts.MaxVisibleItems > 0 {
		out["maxVisibleItems"] = opts.MaxVisibleItems
	}
	if opts.Align != "" {
		out["align"] = string(opts.Align)
	}
	return out
}
