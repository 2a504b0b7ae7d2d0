package domain

// Config represents the eulerseq configuration loaded from eulerseq.yaml.
type Config struct {
	Sieve    SieveConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type SieveConfig struct {
	// Strategy is "recursive" or "iterative".
	Strategy string
}

type DefaultsConfig struct {
	Threshold int
	Count     int
}

type PathsConfig struct {
	SuitesDir string
	RunsDir   string
}

// DefaultConfig provides sane defaults if eulerseq.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Sieve: SieveConfig{Strategy: "recursive"},
		Defaults: DefaultsConfig{
			Threshold: 500,
			Count:     10,
		},
		Paths: PathsConfig{
			SuitesDir: "suites",
			RunsDir:   "runs",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
