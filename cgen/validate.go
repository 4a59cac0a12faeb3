package cgen

import (
	"fmt"

	"github.com/rehan678p/tree-sitter/rules"
	"github.com/rehan678p/tree-sitter/tables"
)

// errorStateIndex marks the lexer's dedicated error state in error values,
// which sits outside the indexed state sequence.
const errorStateIndex = -1

// TableError reports a structural inconsistency in an input table.  The
// state index and key locate the offending entry; no artifact is produced.
type TableError struct {
	Table      string
	StateIndex int
	Key        string
	Msg        string
}

func (e *TableError) Error() string {
	loc := fmt.Sprintf("%s table, state %d", e.Table, e.StateIndex)
	if e.StateIndex == errorStateIndex {
		loc = fmt.Sprintf("%s table, error state", e.Table)
	}
	if e.Key != "" {
		loc += ", key " + e.Key
	}
	return loc + ": " + e.Msg
}

// AmbiguousActionError reports a key whose action set still holds more than
// one action at generation time: an unresolved conflict upstream.
type AmbiguousActionError struct {
	Table      string
	StateIndex int
	Key        string
}

func (e *AmbiguousActionError) Error() string {
	loc := fmt.Sprintf("%s table, state %d", e.Table, e.StateIndex)
	if e.StateIndex == errorStateIndex {
		loc = fmt.Sprintf("%s table, error state", e.Table)
	}
	return loc + ", key " + e.Key + ": ambiguous action set"
}

func isValidLanguageName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for _, c := range []byte(name) {
		if !((c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') ||
			c == '_') {
			return false
		}
	}
	return true
}

func (g *Generator) validate() error {
	if !isValidLanguageName(g.name) {
		return fmt.Errorf("invalid language name %q", g.name)
	}
	if err := g.validateParseTable(); err != nil {
		return err
	}
	return g.validateLexTable()
}

func (g *Generator) validateParseTable() error {
	for i := 0; i < g.parse.NumStates(); i++ {
		state := g.parse.State(i)
		if state.LexStateID() < 0 || state.LexStateID() >= g.lex.NumStates() {
			return &TableError{
				Table:      "parse",
				StateIndex: i,
				Msg:        fmt.Sprintf("pinned lexer state %d out of range", state.LexStateID()),
			}
		}
		seen := make(map[rules.Symbol]bool)
		for j := 0; j < state.NumEntries(); j++ {
			sym := state.EntrySymbol(j)
			if seen[sym] {
				return &TableError{Table: "parse", StateIndex: i, Key: sym.String(), Msg: "duplicate key"}
			}
			seen[sym] = true
			actions := state.EntryActions(j)
			if len(actions) == 0 {
				return &TableError{Table: "parse", StateIndex: i, Key: sym.String(), Msg: "empty action set"}
			}
			if len(actions) > 1 {
				return &AmbiguousActionError{Table: "parse", StateIndex: i, Key: sym.String()}
			}
			if err := g.validateParseAction(i, sym, actions[0]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) validateParseAction(stateIndex int, sym rules.Symbol, pa tables.ParseAction) error {
	switch pa.Type() {
	case tables.ParseActionTypeShift:
		if pa.StateIndex() < 0 || pa.StateIndex() >= g.parse.NumStates() {
			return &TableError{
				Table:      "parse",
				StateIndex: stateIndex,
				Key:        sym.String(),
				Msg:        fmt.Sprintf("shift target %d out of range", pa.StateIndex()),
			}
		}
	case tables.ParseActionTypeReduce:
		if len(pa.CollapseFlags()) != pa.Arity() {
			return &TableError{
				Table:      "parse",
				StateIndex: stateIndex,
				Key:        sym.String(),
				Msg: fmt.Sprintf("reduce arity %d does not match %d collapse flags",
					pa.Arity(), len(pa.CollapseFlags())),
			}
		}
	}
	return nil
}

func (g *Generator) validateLexTable() error {
	for i := 0; i < g.lex.NumStates(); i++ {
		if err := g.validateLexState(i, g.lex.State(i)); err != nil {
			return err
		}
	}
	return g.validateLexState(errorStateIndex, g.lex.ErrorState())
}

func (g *Generator) validateLexState(stateIndex int, state *tables.LexState) error {
	for j := 0; j < state.NumEntries(); j++ {
		set := state.EntrySet(j)
		if set.Empty() {
			return &TableError{Table: "lex", StateIndex: stateIndex, Key: set.String(), Msg: "empty character set key"}
		}
		for k := 0; k < j; k++ {
			if state.EntrySet(k).Equals(set) {
				return &TableError{Table: "lex", StateIndex: stateIndex, Key: set.String(), Msg: "duplicate key"}
			}
		}
		if err := g.validateLexActions(stateIndex, set.String(), state.EntryActions(j)); err != nil {
			return err
		}
	}
	return g.validateLexActions(stateIndex, "default", state.DefaultActions())
}

func (g *Generator) validateLexActions(stateIndex int, key string, actions []tables.LexAction) error {
	if len(actions) > 1 {
		return &AmbiguousActionError{Table: "lex", StateIndex: stateIndex, Key: key}
	}
	for _, la := range actions {
		if la.Type() == tables.LexActionTypeAdvance {
			if la.StateIndex() < 0 || la.StateIndex() >= g.lex.NumStates() {
				return &TableError{
					Table:      "lex",
					StateIndex: stateIndex,
					Key:        key,
					Msg:        fmt.Sprintf("advance target %d out of range", la.StateIndex()),
				}
			}
		}
	}
	return nil
}
