package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header                *lipgloss.Style
	Title                 *lipgloss.Style
	Position              *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Arrows                *lipgloss.Style
	Description           *lipgloss.Style
	Jump                  *lipgloss.Style
}

// Overrides replace individual colours of the default palette. Values are
// ANSI codes ("33") or hex strings ("#1e90ff"); empty keeps the default.
type Overrides struct {
	Item               string `yaml:"item" toml:"item"`
	Selected           string `yaml:"selected" toml:"selected"`
	SelectedBackground string `yaml:"selectedBackground" toml:"selectedBackground"`
	Accent             string `yaml:"accent" toml:"accent"`
	Description        string `yaml:"description" toml:"description"`
}

var defaultStyles = New(Overrides{})

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// New builds a style set from the default palette with o applied.
func New(o Overrides) *Styles {
	item := pick(o.Item, "249")
	selected := pick(o.Selected, "255")
	selectedBg := pick(o.SelectedBackground, "238")
	accent := pick(o.Accent, "33")
	description := pick(o.Description, "245")

	return &Styles{
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(accent)).Bold(true),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		),
		Position: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(item)),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(selected)).Background(lipgloss.Color(selectedBg)).Bold(true),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Background(lipgloss.Color(selectedBg)),
		),
		Arrows: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Description: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(description)).Italic(true),
		),
		Jump: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
	}
}

func pick(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
