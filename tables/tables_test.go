package tables

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rehan678p/tree-sitter/rules"
)

func TestParseActionOrder(t *testing.T) {
	sym := rules.NewSymbol("expr")
	ordered := []ParseAction{
		Accept(),
		Shift(1),
		Shift(2),
		Reduce(sym, 1, false),
		Reduce(sym, 2, true, false),
	}
	for i := range ordered {
		for j := range ordered {
			r := ordered[i].CompareTo(ordered[j])
			switch {
			case i < j && r >= 0:
				t.Errorf("%s should order before %s", ordered[i], ordered[j])
			case i > j && r <= 0:
				t.Errorf("%s should order after %s", ordered[i], ordered[j])
			case i == j && r != 0:
				t.Errorf("%s should compare equal to itself", ordered[i])
			}
		}
	}
}

func TestLexActionOrder(t *testing.T) {
	sym := rules.NewSymbol("ident")
	ordered := []LexAction{
		Advance(0),
		Advance(3),
		AcceptToken(sym),
		Error(),
	}
	for i := range ordered {
		for j := range ordered {
			r := ordered[i].CompareTo(ordered[j])
			switch {
			case i < j && r >= 0:
				t.Errorf("%s should order before %s", ordered[i], ordered[j])
			case i > j && r <= 0:
				t.Errorf("%s should order after %s", ordered[i], ordered[j])
			case i == j && r != 0:
				t.Errorf("%s should compare equal to itself", ordered[i])
			}
		}
	}
}

func TestParseTableBuilder(t *testing.T) {
	x := rules.NewSymbol("x")
	y := rules.NewSymbol("y")
	pt := OpenParseTableBuilder().
		Symbols(x, y).
		State(0).
		Action(y, Shift(1)).
		Action(x, Shift(0)).
		State(1).
		Action(x, Accept()).
		MustBuild()
	if pt.NumSymbols() != 2 || pt.NumStates() != 2 {
		t.Fatalf("built %d symbols, %d states", pt.NumSymbols(), pt.NumStates())
	}
	state := pt.State(0)
	if state.NumEntries() != 2 {
		t.Fatalf("state 0 has %d entries", state.NumEntries())
	}
	// Entries keep insertion order.
	if state.EntrySymbol(0) != y || state.EntrySymbol(1) != x {
		t.Error("entries should keep insertion order")
	}
}

func TestActionSetCanonicalOrder(t *testing.T) {
	x := rules.NewSymbol("x")
	sym := rules.NewSymbol("expr")
	pt := OpenParseTableBuilder().
		Symbols(x).
		State(0).
		Action(x, Reduce(sym, 1, true), Shift(2), Accept(), Shift(2)).
		MustBuild()
	actions := pt.State(0).EntryActions(0)
	if len(actions) != 3 {
		t.Fatalf("set holds %d actions, want 3 (duplicate dropped)", len(actions))
	}
	if actions[0].Type() != ParseActionTypeAccept ||
		actions[1].Type() != ParseActionTypeShift ||
		actions[2].Type() != ParseActionTypeReduce {
		t.Errorf("actions not in canonical order: %v", actions)
	}
}

func TestExpectedInputs(t *testing.T) {
	b := rules.NewSymbol("b")
	a := rules.NewSymbol("a")
	aux := rules.NewAuxiliarySymbol("a")
	pt := OpenParseTableBuilder().
		Symbols(a, b, aux).
		State(0).
		Action(b, Shift(0)).
		Action(aux, Shift(0)).
		Action(a, Accept()).
		MustBuild()
	expected := pt.State(0).ExpectedInputs()
	if len(expected) != 3 {
		t.Fatalf("expected-input set has %d symbols", len(expected))
	}
	if expected[0] != a || expected[1] != b || expected[2] != aux {
		t.Errorf("expected-input set not sorted: %v", expected)
	}
}

func TestLexTableBuilder(t *testing.T) {
	x := rules.NewSymbol("x")
	digits := rules.NewCharacterSet(rules.CharacterRange{Least: '0', Greatest: '9'})
	letter := rules.NewCharacterSet(rules.CharacterRange{Least: 'x', Greatest: 'x'})
	lt := OpenLexTableBuilder().
		State().
		Rule(digits, Advance(1)).
		Rule(letter, AcceptToken(x)).
		State().
		Default(AcceptToken(x)).
		MustBuild()
	if lt.NumStates() != 2 {
		t.Fatalf("built %d states", lt.NumStates())
	}
	if lt.State(0).NumEntries() != 2 {
		t.Errorf("state 0 has %d entries", lt.State(0).NumEntries())
	}
	if !lt.State(0).EntrySet(0).Equals(digits) {
		t.Error("rules should keep insertion order")
	}
	if len(lt.State(0).DefaultActions()) != 0 {
		t.Error("state 0 should have no default actions")
	}
	if len(lt.State(1).DefaultActions()) != 1 {
		t.Error("state 1 should have one default action")
	}
	// A table built without ErrorState() still carries an empty one.
	if lt.ErrorState() == nil || lt.ErrorState().NumEntries() != 0 {
		t.Error("missing error state should build empty")
	}
}

func TestLexTableErrorState(t *testing.T) {
	ws := rules.NewCharacterSet(rules.CharacterRange{Least: ' ', Greatest: ' '})
	lt := OpenLexTableBuilder().
		State().
		ErrorState().
		Rule(ws, Advance(0)).
		MustBuild()
	if lt.ErrorState().NumEntries() != 1 {
		t.Error("error state should carry its rule")
	}
	if lt.State(0).NumEntries() != 0 {
		t.Error("rule after ErrorState() must not land in state 0")
	}
}

func TestWriteTables(t *testing.T) {
	x := rules.NewSymbol("x")
	pt := OpenParseTableBuilder().
		Symbols(x).
		State(0).
		Action(x, Shift(1)).
		State(0).
		Action(x, Accept()).
		MustBuild()
	lt := OpenLexTableBuilder().
		State().
		Rule(rules.NewCharacterSet(rules.CharacterRange{Least: 'x', Greatest: 'x'}), AcceptToken(x)).
		MustBuild()
	var buf bytes.Buffer
	WriteParseTable(pt, &buf)
	if !strings.Contains(buf.String(), "shift 1") {
		t.Errorf("parse dump missing shift:\n%s", buf.String())
	}
	buf.Reset()
	WriteLexTable(lt, &buf)
	if !strings.Contains(buf.String(), "accept-token x") || !strings.Contains(buf.String(), "(error)") {
		t.Errorf("lex dump incomplete:\n%s", buf.String())
	}
}
