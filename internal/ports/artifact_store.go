package ports

import "github.com/aalvaropc/eulerseq/internal/domain"

// ArtifactStore persists suite run artifacts.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
}
