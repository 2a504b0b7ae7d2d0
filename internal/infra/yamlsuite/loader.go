package yamlsuite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	suitesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{suitesDir: "suites"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSuitesDir(dir string) Option {
	return func(l *Loader) { l.suitesDir = dir }
}

var _ ports.SuiteLoader = (*Loader)(nil)

func (l *Loader) LoadSuite(path string) (domain.Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlSuite
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Suite{}, &domain.OpError{
			Op:   "yamlsuite.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

func (l *Loader) ListSuites(root string) ([]domain.SuiteRef, error) {
	dir := filepath.Join(root, l.suitesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsuite.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SuiteRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readSuiteName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.SuiteRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readSuiteName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlSuite struct {
	Name  string     `yaml:"name"`
	Cases []yamlCase `yaml:"cases"`
}

type yamlCase struct {
	Name     string `yaml:"name"`
	Problem  string `yaml:"problem"`
	Strategy string `yaml:"strategy"`

	Count     *int   `yaml:"count"`
	Index     *int   `yaml:"index"`
	Threshold *int   `yaml:"threshold"`
	N         *int64 `yaml:"n"`

	Assert yamlAssertions `yaml:"assert"`
}

type yamlAssertions struct {
	MaxMS *int `yaml:"max_ms"`

	JSONPath map[string]yamlJSONPathAssertion `yaml:"jsonpath"`
}

type yamlJSONPathAssertion struct {
	Exists   bool     `yaml:"exists"`
	Eq       *string  `yaml:"eq"`
	Contains *string  `yaml:"contains"`
	Matches  *string  `yaml:"matches"`
	Gt       *float64 `yaml:"gt"`
	Lt       *float64 `yaml:"lt"`
}

func mapAndValidate(path string, ys yamlSuite) (domain.Suite, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return domain.Suite{}, invalidField(path, "name", "suite name is required")
	}

	suite := domain.Suite{
		Name:  ys.Name,
		Cases: make([]domain.CaseSpec, 0, len(ys.Cases)),
	}

	for i, c := range ys.Cases {
		fieldPrefix := fmt.Sprintf("cases[%d]", i)

		if strings.TrimSpace(c.Name) == "" {
			return domain.Suite{}, invalidField(path, fieldPrefix+".name", "case name is required")
		}

		problem, ok := domain.ParseProblem(c.Problem)
		if !ok {
			return domain.Suite{}, invalidField(path, fieldPrefix+".problem",
				fmt.Sprintf("unsupported problem %q (expected primes|triangle|divisors)", c.Problem))
		}

		spec := domain.ProblemSpec{
			Problem:  problem,
			Strategy: strings.TrimSpace(c.Strategy),
		}

		switch problem {
		case domain.ProblemPrimes:
			if c.Count == nil && c.Index == nil {
				return domain.Suite{}, invalidField(path, fieldPrefix, "primes needs count or index")
			}
			if c.Count != nil {
				spec.Count = *c.Count
			}
			if c.Index != nil {
				spec.Index = *c.Index
			}
		case domain.ProblemTriangle:
			if c.Threshold == nil {
				return domain.Suite{}, invalidField(path, fieldPrefix+".threshold", "threshold is required")
			}
			spec.Threshold = *c.Threshold
		case domain.ProblemDivisors:
			if c.N == nil {
				return domain.Suite{}, invalidField(path, fieldPrefix+".n", "n is required")
			}
			spec.N = *c.N
		}

		suite.Cases = append(suite.Cases, domain.CaseSpec{
			Name: c.Name,
			Spec: spec,
			Assert: domain.AssertionsSpec{
				MaxMS:    c.Assert.MaxMS,
				JSONPath: mapJSONPath(c.Assert.JSONPath),
			},
		})
	}

	return suite, nil
}

func mapJSONPath(in map[string]yamlJSONPathAssertion) map[string]domain.JSONPathAssertion {
	out := make(map[string]domain.JSONPathAssertion, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathAssertion{
			Exists:   v.Exists,
			Eq:       v.Eq,
			Contains: v.Contains,
			Matches:  v.Matches,
			Gt:       v.Gt,
			Lt:       v.Lt,
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsuite.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
