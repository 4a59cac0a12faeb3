package rules

import (
	"testing"
)

func rangesEqual(a, b []CharacterRange) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if b[i] != r {
			return false
		}
	}
	return true
}

func TestRegularize(t *testing.T) {
	cs := NewCharacterSet(
		CharacterRange{5, 10},
		CharacterRange{2, 4},
		CharacterRange{6, 11},
		CharacterRange{180, 190},
		CharacterRange{13, 20},
		CharacterRange{18, 23},
	)
	want := []CharacterRange{{2, 11}, {13, 23}, {180, 190}}
	if !rangesEqual(cs.Ranges(), want) {
		t.Errorf("regularized to %v, want %v", cs.Ranges(), want)
	}
}

func TestTest(t *testing.T) {
	cs := NewCharacterSet(CharacterRange{'a', 'z'}, CharacterRange{'0', '9'})
	for _, x := range []rune{'a', 'm', 'z', '0', '9'} {
		if !cs.Test(x) {
			t.Errorf("set should contain %q", x)
		}
	}
	for _, x := range []rune{'A', ' ', 'z' + 1, '0' - 1} {
		if cs.Test(x) {
			t.Errorf("set should not contain %q", x)
		}
	}
}

func TestComplement(t *testing.T) {
	cs := NewCharacterSet(CharacterRange{'a', 'c'})
	comp := cs.Complement()
	want := []CharacterRange{{MinChar, 'a' - 1}, {'c' + 1, MaxChar}}
	if !rangesEqual(comp.Ranges(), want) {
		t.Errorf("complement is %v, want %v", comp.Ranges(), want)
	}
	if !comp.Complement().Equals(cs) {
		t.Error("complement does not round-trip")
	}
	full := NewCharacterSet().Complement()
	if !rangesEqual(full.Ranges(), []CharacterRange{{MinChar, MaxChar}}) {
		t.Errorf("complement of the empty set is %v", full.Ranges())
	}
	if !full.Complement().Empty() {
		t.Error("complement of the full domain should be empty")
	}
}

func TestMostCompactRepresentation(t *testing.T) {
	// A class excluding only three scattered characters: its complement
	// has three ranges, the direct form four.
	excluded := NewCharacterSet(
		CharacterRange{'a', 'a'},
		CharacterRange{'m', 'm'},
		CharacterRange{'z', 'z'},
	)
	cs := excluded.Complement()
	rep, direct := cs.MostCompactRepresentation()
	if direct {
		t.Error("expected the complement form")
	}
	if !rep.Equals(excluded) {
		t.Errorf("complement representation is %v, want %v", rep, excluded)
	}

	// A small class stays direct; ties go to the direct form.
	small := NewCharacterSet(CharacterRange{'0', '9'})
	rep, direct = small.MostCompactRepresentation()
	if !direct || !rep.Equals(small) {
		t.Errorf("small class should stay direct, got %v direct=%v", rep, direct)
	}
}

func TestCharacterSetBuilder(t *testing.T) {
	cs := OpenCharacterSetBuilder().
		AddCharacter('b').
		AddRange('a', 'c').
		MustBuild()
	if !rangesEqual(cs.Ranges(), []CharacterRange{{'a', 'c'}}) {
		t.Errorf("built %v", cs.Ranges())
	}
	neg := OpenCharacterSetBuilder().
		AddRange('a', 'c').
		Negate().
		MustBuild()
	if !neg.Equals(NewCharacterSet(CharacterRange{'a', 'c'}).Complement()) {
		t.Errorf("negated build is %v", neg)
	}
	if _, err := OpenCharacterSetBuilder().Build(); err == nil {
		t.Error("empty builder should not build")
	}
}

func TestSymbolOrder(t *testing.T) {
	a := NewSymbol("a")
	b := NewSymbol("b")
	auxA := NewAuxiliarySymbol("a")
	if a.CompareTo(b) >= 0 || b.CompareTo(a) <= 0 {
		t.Error("symbols should order by name")
	}
	if a.CompareTo(auxA) >= 0 {
		t.Error("regular symbols should order before auxiliary ones")
	}
	if a.CompareTo(NewSymbol("a")) != 0 {
		t.Error("equal symbols should compare equal")
	}
}
