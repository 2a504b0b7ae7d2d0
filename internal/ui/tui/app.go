package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/eulerseq/internal/divisors"
	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/lazy"
	"github.com/aalvaropc/eulerseq/internal/primes"
	"github.com/aalvaropc/eulerseq/internal/triangular"
)

type screen int

const (
	screenHome screen = iota
	screenBrowse
	screenSolve
)

type action int

const (
	actPrimesRecursive action = iota
	actPrimesIterative
	actTriangular
	actSearch
	actInitWorkspace
	actQuit
)

const (
	pageSize     = 10
	visibleItems = 15
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	browse browser

	input    textinput.Model
	spin     spinner.Model
	solving  bool
	cancel   context.CancelFunc
	spec     domain.ProblemSpec
	solution *domain.Solution

	toast string

	cwd            string
	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{"Primes (recursive)", "Filter-chain sieve, one nested filter per prime", actPrimesRecursive},
		menuItem{"Primes (iterative)", "Trial division against the primes found so far", actPrimesIterative},
		menuItem{"Triangular numbers", "1, 3, 6, 10, ... with their divisor counts", actTriangular},
		menuItem{"Highly divisible triangle", "First triangular number with more than K divisors", actSearch},
		menuItem{"Init workspace", "Write eulerseq.yaml and suites/ in this directory", actInitWorkspace},
		menuItem{"Quit", "Exit eulerseq", actQuit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "eulerseq"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Prompt = "K > "
	ti.Placeholder = "500"
	ti.CharLimit = 6

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		input: ti,
		spin:  sp,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case solveDoneMsg:
		m.solving = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			m.solution = nil
			m.toast = userMessage(msg.err)
			return m, nil
		}
		sol := msg.sol
		m.solution = &sol
		return m, nil

	case spinner.TickMsg:
		if !m.solving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenBrowse:
			return m.updateBrowse(msg)
		case screenSolve:
			return m.updateSolve(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			m.toast = ""
			return m.open(it)
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(it menuItem) (tea.Model, tea.Cmd) {
	switch it.act {
	case actPrimesRecursive, actPrimesIterative:
		strategy := primes.Recursive
		if it.act == actPrimesIterative {
			strategy = primes.Iterative
		}
		seq, err := primes.New(string(strategy))
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		wide := lazy.Map(seq, func(p int) int64 { return int64(p) })
		m.browse = newBrowser(it.title, wide, nil).pull(1)
		m.scr = screenBrowse
		return m, nil

	case actTriangular:
		m.browse = newBrowser(it.title, triangular.Numbers(), func(t int64) string {
			return fmt.Sprintf("(%d divisors)", divisors.Count(t))
		}).pull(1)
		m.scr = screenBrowse
		return m, nil

	case actSearch:
		m.scr = screenSolve
		m.solution = nil
		m.input.SetValue("")
		return m, m.input.Focus()

	case actInitWorkspace:
		root := m.cwd
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			root = wd
		}
		return m, cmdInitWorkspaceHere(m.deps, root)

	case actQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "n", "j", "down":
		m.browse = m.browse.pull(1)
	case "f", "pgdown":
		m.browse = m.browse.pull(pageSize)
	case "r":
		m.browse = m.browse.restart().pull(1)
	case "esc", "b", "q":
		m.scr = screenHome
	}
	return m, nil
}

func (m model) updateSolve(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.solving && m.cancel != nil {
			m.cancel()
			return m, nil
		}
		m.input.Blur()
		m.scr = screenHome
		return m, nil

	case "enter":
		if m.solving {
			return m, nil
		}
		spec, err := parseThreshold(m.input.Value())
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		m.solving = true
		m.spec = spec
		m.solution = nil
		m.toast = ""
		return m, tea.Batch(m.spin.Tick, cmdSolve(ctx, m.deps, spec))
	}

	if m.solving {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseThreshold reads K from the input; empty means 500.
func parseThreshold(in string) (domain.ProblemSpec, error) {
	in = strings.TrimSpace(in)
	k := 500
	if in != "" {
		v, err := strconv.Atoi(in)
		if err != nil {
			return domain.ProblemSpec{}, domain.InvalidArgument("tui.threshold", "K must be an integer, got %q", in)
		}
		k = v
	}
	if k < 0 {
		return domain.ProblemSpec{}, domain.InvalidArgument("tui.threshold", "K must be >= 0, got %d", k)
	}
	return domain.ProblemSpec{Problem: domain.ProblemTriangle, Threshold: k}, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("eulerseq") + "\n" +
		m.theme.Subtitle.Render("lazy primes and highly divisible triangular numbers") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace here (Init workspace to create one)")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenBrowse:
		status := fmt.Sprintf("shown: %d • memoized: %d", len(m.browse.shown), m.browse.memoized())
		if m.browse.done {
			status += " • end of sequence"
		}
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.browse.title) + "\n\n" +
				m.theme.Value.Render(renderValues(m.browse.shown, m.browse.annotate, visibleItems)) + "\n\n" +
				m.theme.Help.Render(status),
		)
		help := m.theme.Help.Render("space/n next • f next 10 • r restart • esc back")
		return wrap.Render(header + "\n" + card + "\n" + help + toast)

	case screenSolve:
		var body string
		switch {
		case m.solving:
			body = fmt.Sprintf("%s searching for more than %d divisors…", m.spin.View(), m.spec.Threshold)
		case m.solution != nil:
			body = m.theme.Value.Render(renderSolution(*m.solution))
		default:
			body = m.theme.Help.Render("Enter K and press enter (empty = 500)")
		}
		card := m.theme.Card.Render(
			m.theme.Title.Render("Highly divisible triangle") + "\n\n" +
				m.input.View() + "\n\n" + body,
		)
		help := m.theme.Help.Render("enter search • esc cancel/back")
		return wrap.Render(header + "\n" + card + "\n" + help + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
