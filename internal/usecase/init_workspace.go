package usecase

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/ports"
)

// InitWorkspace scaffolds an eulerseq workspace.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute initializes root (the current directory when empty) and returns
// the absolute path it wrote to.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidArgument,
			Path: root,
			Err:  err,
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
