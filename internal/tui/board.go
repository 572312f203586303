package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"shellgotchi/internal/game"
	"shellgotchi/internal/storage"
)

func RunBoard(eng *game.Engine, store *storage.Store, out io.Writer) error {
	m := newBoardModel(eng, store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
