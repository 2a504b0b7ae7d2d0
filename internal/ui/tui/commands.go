package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdSolve(ctx context.Context, deps Deps, spec domain.ProblemSpec) tea.Cmd {
	return func() tea.Msg {
		if deps.Solver == nil {
			return solveDoneMsg{spec: spec, err: errors.New("Solver is nil")}
		}

		log := deps.Logger
		start := time.Now()
		sol, err := deps.Solver.Solve(ctx, spec)
		if log != nil {
			if err != nil {
				log.Error("tui.solve.error", "problem", string(spec.Problem), "error", err.Error())
			} else {
				log.Info("tui.solve.done",
					"problem", string(spec.Problem),
					"value", sol.Value,
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}
		}
		return solveDoneMsg{spec: spec, sol: sol, err: err}
	}
}
