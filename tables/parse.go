// Package tables models the two automata consumed by code generation: the
// LR parse table and the lexical scan table.  Tables are built once through
// the fluent builders and are immutable afterwards.
package tables

import (
	"fmt"
	"strconv"

	c "github.com/dtromb/collections"
	"github.com/dtromb/collections/tree"

	"github.com/rehan678p/tree-sitter/rules"
)

type ParseActionType int

const (
	ParseActionTypeAccept ParseActionType = iota
	ParseActionTypeShift
	ParseActionTypeReduce
)

// ParseAction is one resolved parser move: accept the input, shift to a
// target state, or reduce a completed production.
type ParseAction struct {
	typ           ParseActionType
	stateIndex    int
	symbol        rules.Symbol
	arity         int
	collapseFlags []bool
}

func Accept() ParseAction {
	return ParseAction{typ: ParseActionTypeAccept}
}

func Shift(stateIndex int) ParseAction {
	return ParseAction{typ: ParseActionTypeShift, stateIndex: stateIndex}
}

// Reduce pops arity symbols and produces symbol.  Each collapse flag marks
// whether the corresponding child node is inlined into its parent; the flag
// count is expected to equal the arity, which generation validates.
func Reduce(symbol rules.Symbol, arity int, collapseFlags ...bool) ParseAction {
	flags := make([]bool, len(collapseFlags))
	copy(flags, collapseFlags)
	return ParseAction{
		typ:           ParseActionTypeReduce,
		symbol:        symbol,
		arity:         arity,
		collapseFlags: flags,
	}
}

func (pa ParseAction) Type() ParseActionType {
	return pa.typ
}

func (pa ParseAction) StateIndex() int {
	return pa.stateIndex
}

func (pa ParseAction) Symbol() rules.Symbol {
	return pa.symbol
}

func (pa ParseAction) Arity() int {
	return pa.arity
}

func (pa ParseAction) CollapseFlags() []bool {
	flags := make([]bool, len(pa.collapseFlags))
	copy(flags, pa.collapseFlags)
	return flags
}

// CompareTo gives the canonical total order over parse actions:
// Accept < Shift < Reduce, then by payload.
func (pa ParseAction) CompareTo(o c.Comparable) int8 {
	pb := o.(ParseAction)
	if pa.typ != pb.typ {
		if pa.typ < pb.typ {
			return -1
		}
		return 1
	}
	switch pa.typ {
	case ParseActionTypeShift:
		if pa.stateIndex != pb.stateIndex {
			if pa.stateIndex < pb.stateIndex {
				return -1
			}
			return 1
		}
	case ParseActionTypeReduce:
		if r := pa.symbol.CompareTo(pb.symbol); r != 0 {
			return r
		}
		if pa.arity != pb.arity {
			if pa.arity < pb.arity {
				return -1
			}
			return 1
		}
		for i, f := range pa.collapseFlags {
			if i >= len(pb.collapseFlags) {
				return 1
			}
			if f != pb.collapseFlags[i] {
				if f {
					return 1
				}
				return -1
			}
		}
		if len(pa.collapseFlags) < len(pb.collapseFlags) {
			return -1
		}
	}
	return 0
}

func (pa ParseAction) String() string {
	switch pa.typ {
	case ParseActionTypeAccept:
		return "accept"
	case ParseActionTypeShift:
		return "shift " + strconv.Itoa(pa.stateIndex)
	default:
		return fmt.Sprintf("reduce %s/%d", pa.symbol, pa.arity)
	}
}

type parseEntry struct {
	symbol  rules.Symbol
	actions tree.Tree
}

// ParseState is one parser state: an ordered mapping from lookahead symbol
// to a canonically ordered action set, pinned to the lexer state that is
// active while the parser sits in this state.
type ParseState struct {
	lexStateID int
	entries    []*parseEntry
}

func (ps *ParseState) LexStateID() int {
	return ps.lexStateID
}

func (ps *ParseState) NumEntries() int {
	return len(ps.entries)
}

func (ps *ParseState) EntrySymbol(idx int) rules.Symbol {
	if idx < 0 || idx >= len(ps.entries) {
		panic("parse state entry index out of range")
	}
	return ps.entries[idx].symbol
}

// EntryActions returns the action set for one entry, in canonical order.
func (ps *ParseState) EntryActions(idx int) []ParseAction {
	if idx < 0 || idx >= len(ps.entries) {
		panic("parse state entry index out of range")
	}
	return parseActionSlice(ps.entries[idx].actions)
}

// ExpectedInputs is the sorted set of symbols that have any action defined
// in this state.  It feeds the parse-error diagnostics only.
func (ps *ParseState) ExpectedInputs() []rules.Symbol {
	expected := tree.NewTree()
	for _, e := range ps.entries {
		if !treeHasSymbol(expected, e.symbol) {
			expected.Insert(e.symbol)
		}
	}
	res := make([]rules.Symbol, 0, expected.Size())
	for cur := expected.First(); cur.HasNext(); {
		res = append(res, cur.Next().(rules.Symbol))
	}
	return res
}

// ParseTable is the full LR automaton: the symbol set in table order, and
// the states in index order.
type ParseTable struct {
	symbols []rules.Symbol
	states  []*ParseState
}

func (pt *ParseTable) NumSymbols() int {
	return len(pt.symbols)
}

func (pt *ParseTable) Symbol(idx int) rules.Symbol {
	if idx < 0 || idx >= len(pt.symbols) {
		panic("symbol index out of range")
	}
	return pt.symbols[idx]
}

func (pt *ParseTable) NumStates() int {
	return len(pt.states)
}

func (pt *ParseTable) State(idx int) *ParseState {
	if idx < 0 || idx >= len(pt.states) {
		panic("parse state index out of range")
	}
	return pt.states[idx]
}

func parseActionSlice(t tree.Tree) []ParseAction {
	res := make([]ParseAction, 0, t.Size())
	for cur := t.First(); cur.HasNext(); {
		res = append(res, cur.Next().(ParseAction))
	}
	return res
}

func treeHasSymbol(t tree.Tree, s rules.Symbol) bool {
	if v, has := t.Lookup(c.LTE, s); has {
		return v.(rules.Symbol).CompareTo(s) == 0
	}
	return false
}

func treeHasParseAction(t tree.Tree, pa ParseAction) bool {
	if v, has := t.Lookup(c.LTE, pa); has {
		return v.(ParseAction).CompareTo(pa) == 0
	}
	return false
}
