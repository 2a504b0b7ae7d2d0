package tui

import (
	"github.com/aalvaropc/eulerseq/internal/lazy"
)

// browser walks a lazy sequence one element per request. The cursor rests
// on the last element shown, so nothing past it is ever forced.
type browser struct {
	title    string
	start    lazy.Seq[int64]
	cursor   lazy.Seq[int64]
	shown    []int64
	done     bool
	annotate func(int64) string
}

func newBrowser(title string, seq lazy.Seq[int64], annotate func(int64) string) browser {
	return browser{
		title:    title,
		start:    seq,
		cursor:   seq,
		done:     seq.IsEmpty(),
		annotate: annotate,
	}
}

func (b browser) pull(n int) browser {
	for i := 0; i < n && !b.done; i++ {
		next := b.cursor
		if len(b.shown) > 0 {
			next = b.cursor.Tail()
		}
		if next.IsEmpty() {
			b.done = true
			break
		}
		b.cursor = next
		b.shown = append(b.shown[:len(b.shown):len(b.shown)], next.Head())
	}
	return b
}

// restart rewinds to the first element. Elements already computed are
// served from the memoized nodes.
func (b browser) restart() browser {
	b.cursor = b.start
	b.shown = nil
	b.done = b.start.IsEmpty()
	return b
}

// memoized reports how many nodes of the sequence have been computed so far.
func (b browser) memoized() int {
	return len(lazy.Realized(b.start))
}
