package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderValues prints the last maxItems values, one per line, numbered from
// their position in the sequence.
func renderValues(values []int64, annotate func(int64) string, maxItems int) string {
	if len(values) == 0 {
		return "(nothing pulled yet)"
	}

	from := 0
	if maxItems > 0 && len(values) > maxItems {
		from = len(values) - maxItems
	}

	var b strings.Builder
	if from > 0 {
		fmt.Fprintf(&b, "… %d earlier\n", from)
	}
	for i := from; i < len(values); i++ {
		fmt.Fprintf(&b, "%6d  %d", i+1, values[i])
		if annotate != nil {
			b.WriteString("  ")
			b.WriteString(annotate(values[i]))
		}
		if i < len(values)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderSolution(sol domain.Solution) string {
	var b strings.Builder
	switch sol.Problem {
	case domain.ProblemTriangle:
		fmt.Fprintf(&b, "Value:    %d\n", sol.Value)
		fmt.Fprintf(&b, "Index:    %d\n", sol.Steps)
		fmt.Fprintf(&b, "Divisors: %d\n", sol.Divisors)
	case domain.ProblemPrimes:
		fmt.Fprintf(&b, "Value:    %d\n", sol.Value)
		fmt.Fprintf(&b, "Strategy: %s\n", sol.Strategy)
	default:
		fmt.Fprintf(&b, "Value:    %d\n", sol.Value)
		if len(sol.Values) > 0 {
			parts := make([]string, len(sol.Values))
			for i, v := range sol.Values {
				parts[i] = strconv.FormatInt(v, 10)
			}
			fmt.Fprintf(&b, "Values:   %s\n", clampString(strings.Join(parts, " "), 120))
		}
	}
	fmt.Fprintf(&b, "Elapsed:  %dms", sol.ElapsedMS)
	return b.String()
}
