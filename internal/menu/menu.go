package menu

import "strings"

// DefaultMaxVisibleItems is the window size used when an open request does
// not name one.
const DefaultMaxVisibleItems = 7

// Item represents a selectable menu entry supplied by the host.
type Item struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Header describes the optional banner drawn above the menu title.
type Header struct {
	Text            string `json:"text,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	Font            string `json:"font,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// FontName returns the requested font family, accepting the short "font" key.
func (h Header) FontName() string {
	if h.FontFamily != "" {
		return h.FontFamily
	}
	return h.Font
}

// Align controls where the menu sits horizontally.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// ParseAlign reports the Align matching s, ignoring case and surrounding space.
func ParseAlign(s string) (Align, bool) {
	switch Align(strings.ToLower(strings.TrimSpace(s))) {
	case AlignStart:
		return AlignStart, true
	case AlignCenter:
		return AlignCenter, true
	case AlignEnd:
		return AlignEnd, true
	}
	return "", false
}

// Normalize maps unknown or empty values to AlignStart.
func (a Align) Normalize() Align {
	if parsed, ok := ParseAlign(string(a)); ok {
		return parsed
	}
	return AlignStart
}

// Options carries everything an open request supplies. Zero MaxVisibleItems
// and empty Align mean "use the configured default".
type Options struct {
	Header          *Header
	Title           string
	Items           []Item
	Index           int
	MaxVisibleItems int
	Align           Align
}
