//go:build !ebiten

package app

import (
	"errors"
	"log/slog"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag (go run -tags ebiten ./cmd/smoothlife)")

// Run reports that the window cannot be opened in a headless build.
func Run(Sim, Options, *slog.Logger) error {
	return ErrNoGUI
}
