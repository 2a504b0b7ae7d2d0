package ports

import "github.com/aalvaropc/eulerseq/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
