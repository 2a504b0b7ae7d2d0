package tui

import (
	"log/slog"

	"github.com/aalvaropc/eulerseq/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	Solver               ports.Solver

	Logger *slog.Logger
	Debug  bool
}
