package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/primes"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads eulerseq.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Eulerseq.Sieve.Strategy != "" {
		st, err := primes.ParseStrategy(y.Eulerseq.Sieve.Strategy)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Sieve.Strategy = string(st)
	}
	if t := y.Eulerseq.Defaults.Threshold; t != nil {
		if *t < 0 {
			return cfg, invalidField(path, "defaults.threshold", fmt.Sprintf("must be >= 0, got %d", *t))
		}
		cfg.Defaults.Threshold = *t
	}
	if c := y.Eulerseq.Defaults.Count; c != nil {
		if *c < 1 {
			return cfg, invalidField(path, "defaults.count", fmt.Sprintf("must be >= 1, got %d", *c))
		}
		cfg.Defaults.Count = *c
	}
	if y.Eulerseq.Paths.SuitesDir != "" {
		cfg.Paths.SuitesDir = y.Eulerseq.Paths.SuitesDir
	}
	if y.Eulerseq.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Eulerseq.Paths.RunsDir
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}

type yamlConfig struct {
	Eulerseq struct {
		Sieve struct {
			Strategy string `yaml:"strategy"`
		} `yaml:"sieve"`

		Defaults struct {
			Threshold *int `yaml:"threshold"`
			Count     *int `yaml:"count"`
		} `yaml:"defaults"`

		Paths struct {
			SuitesDir string `yaml:"suites_dir"`
			RunsDir   string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"eulerseq"`
}
