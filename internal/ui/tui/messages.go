package tui

import "github.com/aalvaropc/eulerseq/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type solveDoneMsg struct {
	spec domain.ProblemSpec
	sol  domain.Solution
	err  error
}
