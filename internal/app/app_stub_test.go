//go:build !ebiten

package app

import (
	"errors"
	"log/slog"
	"testing"
)

func TestRunWithoutGUI(t *testing.T) {
	if err := Run(nil, Options{}, slog.Default()); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("expected ErrNoGUI, got %v", err)
	}
}
