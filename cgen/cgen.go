package cgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rehan678p/tree-sitter/rules"
	"github.com/rehan678p/tree-sitter/tables"
)

// Generator produces the C dispatch artifact for one parse table and one
// lex table.  It holds no state beyond its immutable inputs; independent
// generators may run in parallel.
type Generator struct {
	name  string
	parse *tables.ParseTable
	lex   *tables.LexTable
}

func New(name string, parseTable *tables.ParseTable, lexTable *tables.LexTable) *Generator {
	return &Generator{name: name, parse: parseTable, lex: lexTable}
}

// Code validates both tables and renders the artifact: six blocks separated
// by single blank lines, with a trailing newline.  Nothing is emitted when
// validation fails.
func (g *Generator) Code() (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	sb := &sourceBuilder{}
	g.includes(sb)
	sb.blank()
	g.symbolEnum(sb)
	sb.blank()
	g.symbolNames(sb)
	sb.blank()
	g.lexFunction(sb)
	sb.blank()
	g.parseFunction(sb)
	sb.blank()
	g.parseConfig(sb)
	return sb.render(), nil
}

// symbolID maps a symbol to its C identifier.  Auxiliary symbols get a
// prefix that keeps them disjoint from regular symbols of the same name.
func symbolID(sym rules.Symbol) string {
	if sym.Auxiliary {
		return "ts_aux_sym_" + sym.Name
	}
	return "ts_sym_" + sym.Name
}

func escapeSymbolName(name string) string {
	name = strings.ReplaceAll(name, `\`, `\\`)
	return strings.ReplaceAll(name, `"`, `\"`)
}

func collapseFlags(flags []bool) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		if f {
			parts[i] = "1"
		} else {
			parts[i] = "0"
		}
	}
	return strings.Join(parts, ", ")
}

// codeForParseActions encodes the first action of a canonically ordered,
// non-empty set.  Validation has already rejected sets holding more.
func codeForParseActions(actions []tables.ParseAction) stmt {
	action := actions[0]
	switch action.Type() {
	case tables.ParseActionTypeAccept:
		return call{"ACCEPT_INPUT();"}
	case tables.ParseActionTypeShift:
		return call{"SHIFT(" + strconv.Itoa(action.StateIndex()) + ");"}
	default:
		return call{fmt.Sprintf("REDUCE(%s, %d, COLLAPSE({%s}));",
			symbolID(action.Symbol()), action.Arity(), collapseFlags(action.CollapseFlags()))}
	}
}

func parseErrorCall(expected []rules.Symbol) stmt {
	ids := make([]string, len(expected))
	for i, sym := range expected {
		ids[i] = symbolID(sym)
	}
	return call{fmt.Sprintf("PARSE_ERROR(%d, EXPECT({%s}));",
		len(expected), strings.Join(ids, ", "))}
}

// codeForLexActions encodes the first action of a canonically ordered set.
// An empty set and an explicit Error action both encode as the lex-error
// instruction: either way those characters match nothing.
func codeForLexActions(actions []tables.LexAction) stmt {
	if len(actions) == 0 {
		return call{"LEX_ERROR();"}
	}
	action := actions[0]
	switch action.Type() {
	case tables.LexActionTypeAdvance:
		return call{"ADVANCE(" + strconv.Itoa(action.StateIndex()) + ");"}
	case tables.LexActionTypeAccept:
		return call{"ACCEPT_TOKEN(" + symbolID(action.Symbol()) + ");"}
	default:
		return call{"LEX_ERROR();"}
	}
}

// parseStateStmts emits one parser state: pin the active lexer state, then
// dispatch on the lookahead symbol.  The expected-input set is derived once
// and reused for the default branch's diagnostic.
func parseStateStmts(ps *tables.ParseState) []stmt {
	expected := ps.ExpectedInputs()
	arms := make([]stmt, 0, ps.NumEntries()+1)
	for i := 0; i < ps.NumEntries(); i++ {
		arms = append(arms, caseArm{
			value: symbolID(ps.EntrySymbol(i)),
			body:  []stmt{codeForParseActions(ps.EntryActions(i))},
		})
	}
	arms = append(arms, defaultArm{body: []stmt{parseErrorCall(expected)}})
	return []stmt{
		call{fmt.Sprintf("SET_LEX_STATE(%d);", ps.LexStateID())},
		switchStmt{subject: "LOOKAHEAD_SYM()", arms: arms},
	}
}

// lexStateStmts emits one lexer state as a sequential guard chain over the
// character-class rules, falling through to the default action set.
func lexStateStmts(ls *tables.LexState) []stmt {
	res := make([]stmt, 0, ls.NumEntries()+1)
	for i := 0; i < ls.NumEntries(); i++ {
		res = append(res, guard{
			cond: conditionForRule(ls.EntrySet(i)),
			body: []stmt{codeForLexActions(ls.EntryActions(i))},
		})
	}
	res = append(res, codeForLexActions(ls.DefaultActions()))
	return res
}

func (g *Generator) switchOnParseState() stmt {
	arms := make([]stmt, 0, g.parse.NumStates()+1)
	for i := 0; i < g.parse.NumStates(); i++ {
		arms = append(arms, caseArm{
			value: strconv.Itoa(i),
			body:  parseStateStmts(g.parse.State(i)),
		})
	}
	arms = append(arms, defaultArm{body: []stmt{call{"PARSE_PANIC();"}}})
	return switchStmt{subject: "PARSE_STATE()", arms: arms}
}

func (g *Generator) switchOnLexState() stmt {
	arms := make([]stmt, 0, g.lex.NumStates()+2)
	for i := 0; i < g.lex.NumStates(); i++ {
		arms = append(arms, caseArm{
			value: strconv.Itoa(i),
			body:  lexStateStmts(g.lex.State(i)),
		})
	}
	arms = append(arms, caseArm{
		value: "ts_lex_state_error",
		body:  lexStateStmts(g.lex.ErrorState()),
	})
	arms = append(arms, defaultArm{body: []stmt{call{"LEX_PANIC();"}}})
	return switchStmt{subject: "LEX_STATE()", arms: arms}
}

func (g *Generator) includes(sb *sourceBuilder) {
	sb.line(`#include "tree_sitter/parser.h"`)
}

// symbolEnum fixes the ordinal identity of every symbol; the name table
// below must stay in lockstep with it.
func (g *Generator) symbolEnum(sb *sourceBuilder) {
	sb.line("enum {")
	sb.push()
	for i := 0; i < g.parse.NumSymbols(); i++ {
		sb.line(symbolID(g.parse.Symbol(i)) + ",")
	}
	sb.pop()
	sb.line("};")
}

func (g *Generator) symbolNames(sb *sourceBuilder) {
	sb.line("SYMBOL_NAMES {")
	sb.push()
	for i := 0; i < g.parse.NumSymbols(); i++ {
		sb.line(`"` + escapeSymbolName(g.parse.Symbol(i).Name) + `",`)
	}
	sb.pop()
	sb.line("};")
}

func (g *Generator) lexFunction(sb *sourceBuilder) {
	sb.line("LEX_FN() {")
	sb.push()
	sb.line("START_LEXER();")
	g.switchOnLexState().emit(sb)
	sb.line("FINISH_LEXER();")
	sb.pop()
	sb.line("}")
}

func (g *Generator) parseFunction(sb *sourceBuilder) {
	sb.line("PARSE_FN() {")
	sb.push()
	sb.line("START_PARSER();")
	g.switchOnParseState().emit(sb)
	sb.line("FINISH_PARSER();")
	sb.pop()
	sb.line("}")
}

func (g *Generator) parseConfig(sb *sourceBuilder) {
	sb.line("EXPORT_PARSER(ts_parse_config_" + g.name + ");")
}
