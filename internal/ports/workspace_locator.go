package ports

// WorkspaceLocator finds an eulerseq workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
