// Package alphabet provides the finite ordered alphabet and word types that
// every presentation, rewriter, and engine in gosemigroups is built from.
//
// A Word is a sequence of letter indices, not of the external symbols the
// caller used to name them; Alphabet is the thin bijection between the two.
// Keeping the two separate lets every other package in the module work with
// plain uint32 slices, which are cheap to copy, compare, and hash.
package alphabet

import "fmt"

// Letter is an internal letter index. Valid letters for an Alphabet of size
// n are 0..n-1.
type Letter uint32

// Alphabet is a finite, ordered set of letters with a cosmetic external
// representation (e.g. "ab01" for letters 0,1,2,3). The empty alphabet is
// legal.
type Alphabet struct {
	symbols []rune
	index   map[rune]Letter
	size    int // used only when symbols == nil (an anonymous alphabet)
}

// New builds an Alphabet from a sequence of distinct symbols, in the order
// given; that order fixes the internal letter indices. Duplicate symbols are
// rejected, matching the InvalidAlphabet requirement that a string-valued
// alphabet contain no repeated letters.
func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	idx := make(map[rune]Letter, len(runes))
	for i, r := range runes {
		if _, ok := idx[r]; ok {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q at position %d", r, i)
		}
		idx[r] = Letter(i)
	}
	return &Alphabet{symbols: runes, index: idx}, nil
}

// Sized builds an anonymous Alphabet of the given size whose symbols are
// unspecified; Letter(i)'s String form is its decimal index. Used by engines
// that work purely in terms of generator indices (Froidure-Pin, Konieczny)
// and never need a cosmetic alias.
func Sized(n int) *Alphabet {
	return &Alphabet{symbols: nil, index: nil, size: n}
}

// Size returns the number of letters in the alphabet.
func (a *Alphabet) Size() int {
	if a.symbols != nil {
		return len(a.symbols)
	}
	return a.size
}

// Contains reports whether l is a valid letter of a.
func (a *Alphabet) Contains(l Letter) bool {
	return int(l) < a.Size()
}

// Symbol returns the external symbol for letter l, or false if a has no
// cosmetic symbols (an anonymous, Sized alphabet) or l is out of range.
func (a *Alphabet) Symbol(l Letter) (rune, bool) {
	if a.symbols == nil || int(l) >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[l], true
}

// LetterOf returns the letter index for an external symbol.
func (a *Alphabet) LetterOf(r rune) (Letter, error) {
	if a.index == nil {
		return 0, fmt.Errorf("alphabet: no symbol table (anonymous alphabet)")
	}
	l, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("alphabet: symbol %q not in alphabet", r)
	}
	return l, nil
}

// ParseWord converts an external string into a Word, validating every
// symbol against the alphabet.
func (a *Alphabet) ParseWord(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for _, r := range s {
		l, err := a.LetterOf(r)
		if err != nil {
			return nil, err
		}
		w = append(w, l)
	}
	return w, nil
}

// String renders a Word back to its external representation, falling back
// to bracketed decimal indices for an anonymous alphabet.
func (a *Alphabet) String(w Word) string {
	if a.symbols == nil {
		s := "["
		for i, l := range w {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprintf("%d", l)
		}
		return s + "]"
	}
	rs := make([]rune, len(w))
	for i, l := range w {
		sym, _ := a.Symbol(l)
		rs[i] = sym
	}
	return string(rs)
}

// Validate reports an error if w contains a letter outside a.
func (a *Alphabet) Validate(w Word) error {
	n := a.Size()
	for i, l := range w {
		if int(l) >= n {
			return fmt.Errorf("alphabet: word letter %d at position %d exceeds alphabet size %d", l, i, n)
		}
	}
	return nil
}
