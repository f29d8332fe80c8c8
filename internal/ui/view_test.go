package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/menu-overlay/internal/menu"
	"github.com/atomicstack/menu-overlay/internal/protocol"
	"github.com/atomicstack/menu-overlay/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func openModel(t *testing.T, interactive bool, opts menu.Options) *Model {
	t.Helper()
	m := NewModel(40, interactive, nil, nil, nil)
	m.apply(protocol.Open{Options: opts})
	if m.Session() == nil {
		t.Fatalf("expected menu to be open")
	}
	return m
}

func itemsJSON(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"label": "item-%02d"}`, i)
	}
	return strings.Join(parts, ", ")
}

func numbered(n int) []menu.Item {
	items := make([]menu.Item, n)
	for i := range items {
		items[i] = menu.Item{Label: fmt.Sprintf("item-%02d", i)}
	}
	return items
}

func TestViewEmptyWhenClosed(t *testing.T) {
	m := NewModel(40, false, nil, nil, nil)
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view, got:\n%s", view)
	}
}

func TestViewShortListHidesArrows(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Title: "Pick",
		Items: []menu.Item{{Label: "a"}, {Label: "b"}, {Label: "c"}},
		Index: 1,
	})
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title and three items, got %d lines:\n%s", len(lines), view)
	}
	if !strings.HasPrefix(lines[0], "Pick") || !strings.HasSuffix(lines[0], "2/3") {
		t.Fatalf("unexpected title line %q", lines[0])
	}
	for i, label := range []string{"a", "b", "c"} {
		if !strings.Contains(lines[i+1], itemIndicator+" "+label) {
			t.Fatalf("expected item %q on line %d, got %q", label, i+1, lines[i+1])
		}
	}
	if strings.Contains(view, arrowsGlyph) {
		t.Fatalf("expected arrows to be hidden, got:\n%s", view)
	}
}

func TestViewLongListShowsWindowAndArrows(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Title:           "Files",
		Items:           numbered(10),
		Index:           5,
		MaxVisibleItems: 3,
	})
	view := m.View()
	if !strings.Contains(view, "6/10") {
		t.Fatalf("expected position 6/10, got:\n%s", view)
	}
	for _, want := range []string{"item-03", "item-04", "item-05"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %s to be visible, got:\n%s", want, view)
		}
	}
	for _, hidden := range []string{"item-02", "item-06"} {
		if strings.Contains(view, hidden) {
			t.Fatalf("expected %s to be hidden, got:\n%s", hidden, view)
		}
	}
	if !strings.Contains(view, arrowsGlyph) {
		t.Fatalf("expected arrows, got:\n%s", view)
	}
}

func TestViewScrolledWindowGolden(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Title:           "Files",
		Items:           numbered(10),
		Index:           5,
		MaxVisibleItems: 3,
	})
	m.menuWidth = 24
	testutil.AssertGolden(t, "view/scrolled_window.txt", m.View())
}

func TestViewHeaderAndDescription(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Header: &menu.Header{Text: "Banner", TextAlign: "center", Color: "#ffffff"},
		Title:  "Pick",
		Items: []menu.Item{
			{Label: "one", Description: "the first"},
			{Label: "two", Description: "the second"},
		},
		Index: 1,
	})
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "Banner") {
		t.Fatalf("expected header on first line, got %q", lines[0])
	}
	if strings.HasPrefix(lines[0], "Banner") {
		t.Fatalf("expected centered header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Pick") {
		t.Fatalf("expected title after header, got %q", lines[1])
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "the second") {
		t.Fatalf("expected selected description last, got %q", last)
	}
}

func TestViewEmptyItemsShowsZeroPosition(t *testing.T) {
	m := openModel(t, false, menu.Options{Title: "Nothing"})
	view := m.View()
	if !strings.Contains(view, "0/0") {
		t.Fatalf("expected 0/0 position, got:\n%s", view)
	}
	if strings.Contains(view, itemIndicator) {
		t.Fatalf("expected no item rows, got:\n%s", view)
	}
}

func TestViewTruncatesLongLabels(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Items: []menu.Item{{Label: strings.Repeat("x", 80)}},
	})
	for _, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(line)); w > 40 {
			t.Fatalf("expected lines within 40 cells, got %d: %q", w, line)
		}
	}
}

func TestViewAlignEndPlacesMenuOnRight(t *testing.T) {
	m := openModel(t, false, menu.Options{
		Title: "Pick",
		Items: []menu.Item{{Label: "a"}, {Label: "b"}},
		Align: menu.AlignEnd,
	})
	m.termWidth = 80
	m.termHeight = 24
	pad := strings.Repeat(" ", 40)
	for _, line := range strings.Split(m.View(), "\n") {
		if !strings.HasPrefix(line, pad) {
			t.Fatalf("expected line to be right aligned, got %q", line)
		}
	}
}

func TestViewLimitsHeight(t *testing.T) {
	m := openModel(t, false, menu.Options{Items: numbered(10), MaxVisibleItems: 10})
	m.termHeight = 4
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "1/10") || !strings.Contains(lines[1], "item-00") {
		t.Fatalf("expected title and selected first row, got %q", lines)
	}
}

func TestViewShortTerminalKeepsSelectedRow(t *testing.T) {
	h := NewHarness(NewModel(40, false, nil, nil, nil))
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 5})
	h.SendHost(`["open", {"items": [` + itemsJSON(20) + `], "maxVisibleItems": 7, "index": 6}]`)

	lines := strings.Split(h.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), h.View())
	}
	if !strings.Contains(lines[0], "7/20") {
		t.Fatalf("expected title first, got %q", lines[0])
	}
	if !strings.Contains(lines[4], "item-06") {
		t.Fatalf("expected selected item on the last row, got %q", lines)
	}
	for _, hidden := range []string{"item-02", arrowsGlyph} {
		if strings.Contains(h.View(), hidden) {
			t.Fatalf("expected %q to be dropped, got:\n%s", hidden, h.View())
		}
	}
}

func TestViewShortTerminalDropsTrailingLinesFirst(t *testing.T) {
	m := openModel(t, true, menu.Options{
		Header: &menu.Header{Text: "Banner"},
		Title:  "Pick",
		Items:  []menu.Item{{Label: "one", Description: "about one"}, {Label: "two"}},
	})
	m.termHeight = 4
	view := m.View()
	for _, want := range []string{"Banner", "Pick", "one", "two"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q to stay, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "about one") || strings.Contains(view, "esc close") {
		t.Fatalf("expected description and footer to be dropped, got:\n%s", view)
	}

	m.termHeight = 1
	view = m.View()
	if strings.Contains(view, "\n") || !strings.Contains(view, "one") {
		t.Fatalf("expected only the selected row, got:\n%s", view)
	}
}

func TestViewInteractiveShowsJumpQuery(t *testing.T) {
	m := openModel(t, true, menu.Options{Items: []menu.Item{{Label: "alpha"}, {Label: "beta"}}})
	m.jumpQuery = "be"
	view := m.View()
	if !strings.Contains(view, jumpPrompt+"be") {
		t.Fatalf("expected jump query, got:\n%s", view)
	}
	if !strings.Contains(view, "esc close") {
		t.Fatalf("expected key help footer, got:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("hello world", 6); got != "hello…" {
		t.Fatalf("expected truncated text, got %q", got)
	}
	if got := truncateText("hello", 0); got != "hello" {
		t.Fatalf("expected zero width to keep text, got %q", got)
	}
}
