package ui

import (
	"strings"

	"github.com/atomicstack/menu-overlay/internal/menu"
	uistate "github.com/atomicstack/menu-overlay/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator = "▌"
	arrowsGlyph   = "▲▼"
	jumpPrompt    = "jump: "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. A closed menu renders nothing.
func (m *Model) View() string {
	s := m.Session()
	if s == nil {
		return ""
	}
	width := m.contentWidth()
	var head []styledLine
	if s.Header != nil {
		head = append(head, m.headerLine(s.Header, width))
	}
	head = append(head, m.titleLine(s, width))
	rows := make([]styledLine, 0, s.WindowLen())
	for _, view := range s.Visible() {
		rows = append(rows, m.buildItemLine(view, width))
	}
	var tail []styledLine
	if s.ShowArrows() {
		tail = append(tail, styledLine{text: lipgloss.PlaceHorizontal(width, lipgloss.Center, arrowsGlyph), style: m.styles.Arrows})
	}
	if desc := s.Description(); desc != "" {
		tail = append(tail, styledLine{text: desc, style: m.styles.Description})
	}
	if m.interactive {
		if m.jumpQuery != "" {
			tail = append(tail, styledLine{text: jumpPrompt + m.jumpQuery, style: m.styles.Jump})
		}
		tail = append(tail, styledLine{text: m.footerHint(), style: m.styles.Position})
	}
	lines := fitHeight(head, rows, tail, s.Index-s.FirstVisible, m.termHeight)
	lines = applyWidth(lines, width)
	return m.place(renderLines(lines), s.Align)
}

// contentWidth is the configured menu width, bounded by the terminal.
func (m *Model) contentWidth() int {
	width := m.menuWidth
	if m.termWidth > 0 && (width <= 0 || width > m.termWidth) {
		width = m.termWidth
	}
	return width
}

// place positions the menu box horizontally inside the terminal.
func (m *Model) place(box string, align menu.Align) string {
	if m.termWidth <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(m.termWidth, alignPosition(align), box)
}

func alignPosition(align menu.Align) lipgloss.Position {
	switch align.Normalize() {
	case menu.AlignCenter:
		return lipgloss.Center
	case menu.AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func textAlignPosition(value string) lipgloss.Position {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "center":
		return lipgloss.Center
	case "right", "end":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// headerLine renders the banner. Font family and background image have no
// terminal equivalent and are left on the session.
func (m *Model) headerLine(h *menu.Header, width int) styledLine {
	style := *m.styles.Header
	if h.Color != "" {
		style = style.Foreground(lipgloss.Color(h.Color))
	}
	if h.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(h.BackgroundColor))
	}
	text := truncateText(h.Text, width)
	return styledLine{
		text:  lipgloss.PlaceHorizontal(width, textAlignPosition(h.TextAlign), text),
		style: &style,
	}
}

// titleLine puts the title on the left and the position counter on the right.
func (m *Model) titleLine(s *uistate.Session, width int) styledLine {
	position := s.Position()
	title := s.Title
	gap := 1
	if width > 0 {
		room := width - lipgloss.Width(position) - 1
		if room < 0 {
			room = 0
		}
		title = truncateText(title, room)
		if g := width - lipgloss.Width(title) - lipgloss.Width(position); g > gap {
			gap = g
		}
	}
	head := title + strings.Repeat(" ", gap)
	return styledLine{
		text:          head + position,
		style:         m.styles.Position,
		prefixStyle:   m.styles.Title,
		highlightFrom: len([]rune(head)),
	}
}

// buildItemLine constructs a single styledLine for a rendered item view.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full menu.
func (m *Model) buildItemLine(view *uistate.ItemView, width int) styledLine {
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if view.Selected {
		lineStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.SelectedItemIndicator
	}
	fullText := itemIndicator + " " + view.Label
	if width > 0 {
		fullText = truncateText(fullText, width)
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) footerHint() string {
	bindings := []struct{ key, desc string }{
		{m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key, "move"},
		{m.keys.Close.Help().Key, "close"},
		{m.keys.Quit.Help().Key, "quit"},
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.key + " " + b.desc
	}
	return strings.Join(parts, "  ")
}

// fitHeight drops lines until the menu fits in height rows. Trailing lines
// go first, then the header, then item rows away from selected. The title
// and the selected row are the last to go.
func fitHeight(head, rows, tail []styledLine, selected, height int) []styledLine {
	total := len(head) + len(rows) + len(tail)
	if height <= 0 || total <= height {
		return concatLines(head, rows, tail)
	}
	if over := total - height; over < len(tail) {
		return concatLines(head, rows, tail[:len(tail)-over])
	}
	if len(head) > 1 && len(head)+len(rows) > height {
		head = head[len(head)-1:]
	}
	room := height - len(head)
	if room < 1 {
		head, room = nil, height
	}
	if room >= len(rows) {
		return concatLines(head, rows, nil)
	}
	if selected < 0 || selected >= len(rows) {
		selected = 0
	}
	start := selected - room + 1
	if start < 0 {
		start = 0
	}
	return concatLines(head, rows[start:start+room], nil)
}

func concatLines(parts ...[]styledLine) []styledLine {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	out := make([]styledLine, 0, n)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		if runes := len([]rune(line.text)); line.highlightFrom > runes {
			line.highlightFrom = runes
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to at most width cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
