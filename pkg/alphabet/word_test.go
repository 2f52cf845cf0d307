package alphabet

import "testing"

func TestWordEqual(t *testing.T) {
	if !(Word{0, 1}).Equal(Word{0, 1}) {
		t.Error("expected equal words to compare equal")
	}
	if (Word{0, 1}).Equal(Word{0, 1, 2}) {
		t.Error("expected different-length words to compare unequal")
	}
}

func TestConcatAndPow(t *testing.T) {
	got := Concat(Word{0, 1}, Word{2})
	want := Word{0, 1, 2}
	if !got.Equal(want) {
		t.Errorf("Concat = %v, want %v", got, want)
	}
	if got := Pow(Word{0, 1}, 3); !got.Equal((Word{0, 1, 0, 1, 0, 1})) {
		t.Errorf("Pow = %v", got)
	}
	if got := Pow(Word{0, 1}, 0); len(got) != 0 {
		t.Errorf("Pow(_, 0) = %v, want empty", got)
	}
}

func TestHasPrefixSuffix(t *testing.T) {
	w := Word{0, 1, 2, 1, 0}
	if !HasPrefix(w, Word{0, 1}) {
		t.Error("expected prefix match")
	}
	if HasPrefix(w, Word{1, 1}) {
		t.Error("expected prefix mismatch")
	}
	if !HasSuffix(w, Word{1, 0}) {
		t.Error("expected suffix match")
	}
	if HasSuffix(w, Word{0, 0}) {
		t.Error("expected suffix mismatch")
	}
}

func TestIndexOf(t *testing.T) {
	w := Word{0, 1, 2, 1, 2, 0}
	if i := IndexOf(w, Word{1, 2}, 0); i != 1 {
		t.Errorf("IndexOf = %d, want 1", i)
	}
	if i := IndexOf(w, Word{1, 2}, 2); i != 3 {
		t.Errorf("IndexOf from 2 = %d, want 3", i)
	}
	if i := IndexOf(w, Word{9}, 0); i != -1 {
		t.Errorf("IndexOf missing = %d, want -1", i)
	}
}

func TestOrderShortlex(t *testing.T) {
	less := Less(Shortlex)
	if !less(Word{0, 1}, Word{1, 0, 0}) {
		t.Error("shorter word should be less regardless of letters")
	}
	if !less(Word{0, 1}, Word{1, 0}) {
		t.Error("same length: lexicographically smaller should be less")
	}
	if less(Word{1, 0}, Word{0, 1}) {
		t.Error("reverse should not be less")
	}
}

func TestOrderLex(t *testing.T) {
	less := Less(Lex)
	if !less(Word{0, 1, 1}, Word{1}) {
		t.Error("lex order ignores length: 0... < 1")
	}
}
