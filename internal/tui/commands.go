package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/todoadmin/internal/domain"
	"github.com/mmcdole/todoadmin/internal/listview"
)

const (
	loadTimeout   = 30 * time.Second
	deleteTimeout = 10 * time.Second
	statusTimeout = 3 * time.Second
	errorTimeout  = 5 * time.Second
)

// Command factories for async operations

// LoadScreenCmd fetches a screen's collection
func LoadScreenCmd[T any](id ScreenID, gen int, fetch func(context.Context) ([]T, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		items, err := fetch(ctx)
		return ScreenLoadedMsg{Screen: id, Gen: gen, Items: items, Err: err}
	}
}

// DeleteItemCmd performs the backend half of an optimistic delete
func DeleteItemCmd[T domain.ListItem](id ScreenID, gen int, ticket listview.DeleteTicket[T], del func(context.Context, T) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
		defer cancel()

		var err error
		if del != nil {
			err = del(ctx, ticket.Item)
		}
		return DeleteResolvedMsg{Screen: id, Gen: gen, Ticket: ticket, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
