// Package ui contains the Bubble Tea program that draws the menu overlay.
// The Model type focuses on message orchestration while dedicated helpers
// own host events, key navigation, and rendering.
//
// Message flow:
//   - A backend.Feed decodes host messages on its own goroutine. Update waits
//     for them one at a time (waitForHostEvent) and hands each to the
//     dispatcher, so commands are applied strictly in arrival order.
//   - In interactive mode key presses are turned into the same open/move/close
//     commands by the command bus (internal/ui/command) and routed through the
//     dispatcher exactly like host messages.
//   - Every tea.Msg type is routed through a typed handler registry so each
//     message is handled by a focused function.
//
// State ownership:
//   - The dispatcher (internal/data/dispatcher) owns the single menu session.
//   - internal/ui/state.Session tracks items, the selected index and the window
//     of rendered item views; View only reads it.
package ui
