package tui

type copiedMsg struct {
	tab string
	err error
}

type clearStatusMsg struct{}
