package semigroups

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitrdm/gosemigroups/internal/parallel"
	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/gitrdm/gosemigroups/pkg/kernel"
)

// FroidurePin is the orderly enumeration engine of spec.md §4.5: given a
// finite generator set, it constructs every distinct element reachable by
// repeated composition, a shortlex-least generating word for each, and the
// right (and optionally left) Cayley graph over the generator set.
//
// Grounded on the orbit/spanning-tree discipline already shared with
// Orbit (orbit.go) — elements here are exactly an Orbit's points if one
// ignores the left/right-action split Konieczny needs, generalized into a
// two-sided expansion with a batch-boundary hook for concurrent products.
type FroidurePin struct {
	generators []kernel.Element
	cfg        FroidurePinConfig

	elements []kernel.Element
	words    []alphabet.Word
	index    map[uint64][]int

	rightCayley *WordGraph
	leftCayley  *WordGraph

	// mu guards only the element table, word table, hash index, and
	// Cayley graph writes expandOne touches — not the Compose calls
	// themselves, which run lock-free so a batch's concurrently dispatched
	// goroutines (see expandOne) actually overlap on the part of the work
	// worth parallelising.
	mu   sync.Mutex
	done bool
}

// NewFroidurePin builds an (unrun) engine over generators.
func NewFroidurePin(generators []kernel.Element, cfg FroidurePinConfig) *FroidurePin {
	return &FroidurePin{generators: generators, cfg: cfg, index: make(map[uint64][]int)}
}

// Run enumerates every element, blocking until done, ctx is cancelled, or
// (per spec.md §4.5's "if left Cayley graph is requested") both Cayley
// graphs are fully populated. Calling Run again on an already-completed
// engine is a no-op.
func (fp *FroidurePin) Run(ctx context.Context) error {
	if fp.done {
		return nil
	}
	degree := len(fp.generators)
	fp.rightCayley = NewWordGraph(degree)
	if fp.cfg.LeftCayleyGraph {
		fp.leftCayley = NewWordGraph(degree)
	}

	var frontier []int
	for i, g := range fp.generators {
		if _, found := fp.find(g); found {
			continue
		}
		idx := fp.addElement(g, alphabet.Word{alphabet.Letter(i)})
		frontier = append(frontier, idx)
	}

	pool := parallel.NewWorkerPool(0)
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := frontier
		if len(batch) > fp.cfg.BatchSize {
			batch = batch[:fp.cfg.BatchSize]
		}
		frontier = frontier[len(batch):]

		discovered := make([][]int, len(batch))
		expand := func(b int) error {
			discovered[b] = fp.expandOne(batch[b])
			return nil
		}
		if len(batch) >= fp.cfg.ConcurrencyThreshold && fp.cfg.ConcurrencyThreshold > 0 {
			if err := pool.RunBatch(ctx, len(batch), expand); err != nil {
				return err
			}
		} else {
			for b := range batch {
				_ = expand(b)
			}
		}
		for _, ni := range discovered {
			frontier = append(frontier, ni...)
		}
	}
	fp.done = true
	return nil
}

// composed is one generator's product with an expanding element, computed
// outside fp.mu so a batch's Compose calls genuinely run in parallel; only
// the lookup/registration that follows needs the lock.
type composed struct {
	g    int
	prod kernel.Element
	left bool
}

// expandOne computes every product of elements[idx] with a generator (on
// the right, and on the left if a left Cayley graph was requested),
// recording each newly-discovered element and returning their indices.
// The Compose calls themselves (the expensive part, and the reason
// Run dispatches a batch of expandOne calls across a worker pool) run
// without holding fp.mu; the lock is taken only to read the expanding
// element's own word and, afterward, to register any newly discovered
// element and write the Cayley graph edges, since both touch state shared
// across the whole batch.
func (fp *FroidurePin) expandOne(idx int) []int {
	fp.mu.Lock()
	elem := fp.elements[idx]
	word := fp.words[idx]
	fp.mu.Unlock()

	prods := make([]composed, 0, 2*len(fp.generators))
	for g := range fp.generators {
		prods = append(prods, composed{g: g, prod: elem.Compose(fp.generators[g])})
	}
	if fp.cfg.LeftCayleyGraph {
		for g := range fp.generators {
			prods = append(prods, composed{g: g, prod: fp.generators[g].Compose(elem), left: true})
		}
	}

	fp.mu.Lock()
	defer fp.mu.Unlock()
	var discovered []int
	for _, c := range prods {
		if !c.left {
			existing, found := fp.find(c.prod)
			if !found {
				w := append(word.Clone(), alphabet.Letter(c.g))
				existing = fp.addElement(c.prod, w)
				discovered = append(discovered, existing)
			}
			fp.rightCayley.SetTarget(uint32(idx), alphabet.Letter(c.g), uint32(existing))
			continue
		}
		existing, found := fp.find(c.prod)
		if !found {
			w := append(alphabet.Word{alphabet.Letter(c.g)}, word...)
			existing = fp.addElement(c.prod, w)
			discovered = append(discovered, existing)
		}
		fp.leftCayley.SetTarget(uint32(idx), alphabet.Letter(c.g), uint32(existing))
	}
	return discovered
}

func (fp *FroidurePin) addElement(e kernel.Element, w alphabet.Word) int {
	idx := len(fp.elements)
	fp.elements = append(fp.elements, e)
	fp.words = append(fp.words, w)
	fp.index[e.Hash()] = append(fp.index[e.Hash()], idx)
	fp.rightCayley.AddNode()
	if fp.leftCayley != nil {
		fp.leftCayley.AddNode()
	}
	return idx
}

func (fp *FroidurePin) find(e kernel.Element) (int, bool) {
	for _, i := range fp.index[e.Hash()] {
		if fp.elements[i].Equals(e) {
			return i, true
		}
	}
	return -1, false
}

// HumanReadable renders spec.md §7's unified ".to_human_readable_repr()"
// summary string for this engine.
func (fp *FroidurePin) HumanReadable() string {
	if !fp.done {
		return fmt.Sprintf("FroidurePin over %d generators, not yet run", len(fp.generators))
	}
	return fmt.Sprintf("FroidurePin over %d generators with %d elements found", len(fp.generators), len(fp.elements))
}

// Size reports the number of elements found so far as a Cardinal: finite
// once Run has completed, unknown otherwise (Froidure-Pin never detects
// obvious infinity the way Knuth-Bendix's abelianisation check does — an
// unbounded generator set simply never terminates Run).
func (fp *FroidurePin) Size() Cardinal {
	if !fp.done {
		return UnknownCardinal
	}
	return Finite(len(fp.elements))
}

// NumberOfElements returns the element count, requiring Run to have
// completed.
func (fp *FroidurePin) NumberOfElements() (int, error) {
	if !fp.done {
		return 0, ErrEngineNotReady
	}
	return len(fp.elements), nil
}

// ElementAt returns the element discovered at index i.
func (fp *FroidurePin) ElementAt(i int) kernel.Element { return fp.elements[i] }

// WordAt returns the shortlex-least generating word discovered for index i.
func (fp *FroidurePin) WordAt(i int) alphabet.Word { return fp.words[i] }

// IndexOf returns the index of e, if present.
func (fp *FroidurePin) IndexOf(e kernel.Element) (int, bool) { return fp.find(e) }

// Contains reports whether e was found during enumeration.
func (fp *FroidurePin) Contains(e kernel.Element) bool {
	_, found := fp.find(e)
	return found
}

// RightCayleyGraph returns the right Cayley graph: node i, generator g
// reaches the index of ElementAt(i).Compose(generators[g]).
func (fp *FroidurePin) RightCayleyGraph() *WordGraph { return fp.rightCayley }

// LeftCayleyGraph returns the left Cayley graph, or nil if
// FroidurePinConfig.LeftCayleyGraph was false.
func (fp *FroidurePin) LeftCayleyGraph() *WordGraph { return fp.leftCayley }
