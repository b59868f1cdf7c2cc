// Package tui is the terminal front end of the client: a single
// bubbletea program over the on-device store and the proxy server's
// scripture endpoints.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/store"
)

type TUI struct {
	storages *store.Storages
	bible    adapter.BibleAPI
	version  string
}

func New(storages *store.Storages, bible adapter.BibleAPI, version string, _ *logger.Logger) (*TUI, error) {
	if storages == nil {
		return nil, errors.New("storages are required")
	}
	if bible == nil {
		return nil, errors.New("bible api is required")
	}
	return &TUI{storages: storages, bible: bible, version: version}, nil
}

// Run drives the interactive session until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.storages, t.bible, t.version)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
