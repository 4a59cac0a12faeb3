package tables

import (
	"errors"

	"github.com/dtromb/collections/tree"

	"github.com/rehan678p/tree-sitter/rules"
)

// ParseTableBuilder assembles a parse table state by state.  State() opens
// a new state; Action() adds one keyed entry to the open state.  Entries
// keep their insertion order; the actions inside an entry are kept in
// canonical order.  The builder does not judge table consistency - that is
// the generator's validation pass, so inconsistent tables can be built and
// then rejected with a located error.
type ParseTableBuilder interface {
	Symbols(symbols ...rules.Symbol) ParseTableBuilder
	State(lexStateID int) ParseTableBuilder
	Action(on rules.Symbol, actions ...ParseAction) ParseTableBuilder
	Build() (*ParseTable, error)
	MustBuild() *ParseTable
}

func OpenParseTableBuilder() ParseTableBuilder {
	return &parseTableBuilder{}
}

type parseTableBuilder struct {
	symbols []rules.Symbol
	states  []*ParseState
	built   bool
}

func (ptb *parseTableBuilder) Symbols(symbols ...rules.Symbol) ParseTableBuilder {
	ptb.symbols = append(ptb.symbols, symbols...)
	return ptb
}

func (ptb *parseTableBuilder) State(lexStateID int) ParseTableBuilder {
	ptb.states = append(ptb.states, &ParseState{lexStateID: lexStateID})
	return ptb
}

func (ptb *parseTableBuilder) Action(on rules.Symbol, actions ...ParseAction) ParseTableBuilder {
	if len(ptb.states) == 0 {
		panic("Action() called before State()")
	}
	state := ptb.states[len(ptb.states)-1]
	entry := &parseEntry{symbol: on, actions: tree.NewTree()}
	for _, pa := range actions {
		if !treeHasParseAction(entry.actions, pa) {
			entry.actions.Insert(pa)
		}
	}
	state.entries = append(state.entries, entry)
	return ptb
}

func (ptb *parseTableBuilder) Build() (*ParseTable, error) {
	if ptb.built {
		return nil, errors.New("parse table builder already consumed")
	}
	ptb.built = true
	return &ParseTable{symbols: ptb.symbols, states: ptb.states}, nil
}

func (ptb *parseTableBuilder) MustBuild() *ParseTable {
	pt, err := ptb.Build()
	if err != nil {
		panic(err.Error())
	}
	return pt
}

// LexTableBuilder assembles a lex table.  State() opens the next indexed
// state, ErrorState() opens the dedicated error state; Rule() and Default()
// add to whichever state is open.  A table built without ErrorState() gets
// an empty error state, which generates as an unconditional lex error.
type LexTableBuilder interface {
	State() LexTableBuilder
	ErrorState() LexTableBuilder
	Rule(on rules.CharacterSet, actions ...LexAction) LexTableBuilder
	Default(actions ...LexAction) LexTableBuilder
	Build() (*LexTable, error)
	MustBuild() *LexTable
}

func OpenLexTableBuilder() LexTableBuilder {
	return &lexTableBuilder{}
}

type lexTableBuilder struct {
	states     []*LexState
	errorState *LexState
	current    *LexState
	built      bool
}

func newLexState() *LexState {
	return &LexState{defaults: tree.NewTree()}
}

func (ltb *lexTableBuilder) State() LexTableBuilder {
	ltb.current = newLexState()
	ltb.states = append(ltb.states, ltb.current)
	return ltb
}

func (ltb *lexTableBuilder) ErrorState() LexTableBuilder {
	if ltb.errorState != nil {
		panic("ErrorState() called twice")
	}
	ltb.current = newLexState()
	ltb.errorState = ltb.current
	return ltb
}

func (ltb *lexTableBuilder) Rule(on rules.CharacterSet, actions ...LexAction) LexTableBuilder {
	if ltb.current == nil {
		panic("Rule() called before State()")
	}
	entry := &lexEntry{set: on, actions: tree.NewTree()}
	for _, la := range actions {
		if !treeHasLexAction(entry.actions, la) {
			entry.actions.Insert(la)
		}
	}
	ltb.current.entries = append(ltb.current.entries, entry)
	return ltb
}

func (ltb *lexTableBuilder) Default(actions ...LexAction) LexTableBuilder {
	if ltb.current == nil {
		panic("Default() called before State()")
	}
	for _, la := range actions {
		if !treeHasLexAction(ltb.current.defaults, la) {
			ltb.current.defaults.Insert(la)
		}
	}
	return ltb
}

func (ltb *lexTableBuilder) Build() (*LexTable, error) {
	if ltb.built {
		return nil, errors.New("lex table builder already consumed")
	}
	ltb.built = true
	errorState := ltb.errorState
	if errorState == nil {
		errorState = newLexState()
	}
	return &LexTable{states: ltb.states, errorState: errorState}, nil
}

func (ltb *lexTableBuilder) MustBuild() *LexTable {
	lt, err := ltb.Build()
	if err != nil {
		panic(err.Error())
	}
	return lt
}
