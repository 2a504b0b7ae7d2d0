package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/infra/runstore"
	"github.com/aalvaropc/eulerseq/internal/infra/workspacefinder"
	"github.com/aalvaropc/eulerseq/internal/infra/yamlsuite"
	"github.com/aalvaropc/eulerseq/internal/ports"
	"github.com/aalvaropc/eulerseq/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	suites ports.SuiteLoader
	solver ports.Solver
	store  *runstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	suiteLoader := yamlsuite.NewLoader(
		yamlsuite.WithSuitesDir(cfg.Paths.SuitesDir),
	)

	store := runstore.NewJSONStore(root, cfg, runstore.WithIndex(true))

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		suites: suiteLoader,
		solver: newSolver(cfg),
		store:  store,
	}, nil
}

// loadConfigOrDefault returns the config of the enclosing workspace, or the
// defaults when the working directory is not inside one.
func loadConfigOrDefault(workspaceFlag string) (string, domain.Config, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if strings.TrimSpace(workspaceFlag) != "" {
			return "", domain.Config{}, err
		}
		return "", domain.DefaultConfig(), nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return "", domain.Config{}, err
	}
	return root, cfg, nil
}

func newSolver(cfg domain.Config) *usecase.SolveProblem {
	return usecase.NewSolveProblem(usecase.WithDefaultStrategy(cfg.Sieve.Strategy))
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `eulerseq init`): %w", wd, err)
	}
	return root, nil
}

func resolveSuitePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("suite is required (use --suite or -s)")
	}

	// Paths are resolved relative to the workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	suitesDir := filepath.Join(ws.root, ws.cfg.Paths.SuitesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(suitesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(suitesDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match on the suite's name field.
	refs, err := ws.suites.ListSuites(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("suite %q not found in %q", in, suitesDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
