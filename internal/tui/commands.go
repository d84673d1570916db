// Package tui provides a terminal user interface for visualizing artifact
// synchronization progress.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// Source is an interface for reading progrock status updates.
type Source interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForUpdate returns a Bubble Tea command that reads the next status
// update from the source. It returns MsgUpdate on success or MsgStreamEnded
// when the source is exhausted.
func WaitForUpdate(source Source) tea.Cmd {
	return func() tea.Msg {
		update, err := source.Read()
		if err != nil {
			// Read errors other than EOF also end the stream.
			return MsgStreamEnded{}
		}
		return MsgUpdate{Update: update}
	}
}
