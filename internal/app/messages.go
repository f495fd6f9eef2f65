package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/floatbar/internal/app/services"
)

const frameInterval = 16 * time.Millisecond

type (
	frameMsg         time.Time
	configChangedMsg struct{}
)

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForConfigChange(w *services.ConfigWatchService) tea.Cmd {
	ch := w.NextEvent()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}
