package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// switchViewMsg replaces the whole stack with a single top-level view.
// Sent by the number-key shortcuts so the four main screens never nest.
type switchViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to reload its data.
type refreshViewMsg struct{}

// flashMsg shows a transient one-line notice in the status bar.
type flashMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// documentChangedMsg is emitted by the store watcher when the backing
// document is rewritten outside the process.
type documentChangedMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// switchView returns a tea.Cmd that swaps in a new top-level view.
func switchView(v View) tea.Cmd {
	return func() tea.Msg { return switchViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
