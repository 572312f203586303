package root

import (
	"log/slog"
	"os"
	"path/filepath"

	"shellgotchi/internal/game"
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

// openGame wires up a command invocation: the state store at the data path
// and an engine built from the tables (with the optional tables.yaml
// override next to the save file).
func openGame() (*game.Engine, *storage.Store, error) {
	dataPath, err := storage.DefaultDataPath()
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := storage.NewStore(dataPath, log)

	tb, err := tables.Load(filepath.Join(filepath.Dir(dataPath), "tables.yaml"))
	if err != nil {
		return nil, nil, err
	}
	return game.New(tb), store, nil
}
