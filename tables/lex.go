package tables

import (
	"strconv"

	c "github.com/dtromb/collections"
	"github.com/dtromb/collections/tree"

	"github.com/rehan678p/tree-sitter/rules"
)

type LexActionType int

const (
	LexActionTypeAdvance LexActionType = iota
	LexActionTypeAccept
	LexActionTypeError
)

// LexAction is one resolved scanner move: advance to a target lexer state,
// accept the scanned text as a token, or an explicit no-match.
type LexAction struct {
	typ        LexActionType
	stateIndex int
	symbol     rules.Symbol
}

func Advance(stateIndex int) LexAction {
	return LexAction{typ: LexActionTypeAdvance, stateIndex: stateIndex}
}

func AcceptToken(symbol rules.Symbol) LexAction {
	return LexAction{typ: LexActionTypeAccept, symbol: symbol}
}

func Error() LexAction {
	return LexAction{typ: LexActionTypeError}
}

func (la LexAction) Type() LexActionType {
	return la.typ
}

func (la LexAction) StateIndex() int {
	return la.stateIndex
}

func (la LexAction) Symbol() rules.Symbol {
	return la.symbol
}

// CompareTo gives the canonical total order over lex actions:
// Advance < Accept < Error, then by payload.
func (la LexAction) CompareTo(o c.Comparable) int8 {
	lb := o.(LexAction)
	if la.typ != lb.typ {
		if la.typ < lb.typ {
			return -1
		}
		return 1
	}
	switch la.typ {
	case LexActionTypeAdvance:
		if la.stateIndex != lb.stateIndex {
			if la.stateIndex < lb.stateIndex {
				return -1
			}
			return 1
		}
	case LexActionTypeAccept:
		return la.symbol.CompareTo(lb.symbol)
	}
	return 0
}

func (la LexAction) String() string {
	switch la.typ {
	case LexActionTypeAdvance:
		return "advance " + strconv.Itoa(la.stateIndex)
	case LexActionTypeAccept:
		return "accept-token " + la.symbol.String()
	default:
		return "no-match"
	}
}

type lexEntry struct {
	set     rules.CharacterSet
	actions tree.Tree
}

// LexState is one scanner state: an ordered sequence of character-class
// rules plus the default action set that applies when no rule matches.
type LexState struct {
	entries  []*lexEntry
	defaults tree.Tree
}

func (ls *LexState) NumEntries() int {
	return len(ls.entries)
}

func (ls *LexState) EntrySet(idx int) rules.CharacterSet {
	if idx < 0 || idx >= len(ls.entries) {
		panic("lex state entry index out of range")
	}
	return ls.entries[idx].set
}

// EntryActions returns the action set for one rule, in canonical order.
func (ls *LexState) EntryActions(idx int) []LexAction {
	if idx < 0 || idx >= len(ls.entries) {
		panic("lex state entry index out of range")
	}
	return lexActionSlice(ls.entries[idx].actions)
}

func (ls *LexState) DefaultActions() []LexAction {
	return lexActionSlice(ls.defaults)
}

// LexTable is the full scan automaton, with its dedicated error state kept
// outside the indexed state sequence.
type LexTable struct {
	states     []*LexState
	errorState *LexState
}

func (lt *LexTable) NumStates() int {
	return len(lt.states)
}

func (lt *LexTable) State(idx int) *LexState {
	if idx < 0 || idx >= len(lt.states) {
		panic("lex state index out of range")
	}
	return lt.states[idx]
}

func (lt *LexTable) ErrorState() *LexState {
	return lt.errorState
}

func lexActionSlice(t tree.Tree) []LexAction {
	res := make([]LexAction, 0, t.Size())
	for cur := t.First(); cur.HasNext(); {
		res = append(res, cur.Next().(LexAction))
	}
	return res
}

func treeHasLexAction(t tree.Tree, la LexAction) bool {
	if v, has := t.Lookup(c.LTE, la); has {
		return v.(LexAction).CompareTo(la) == 0
	}
	return false
}
