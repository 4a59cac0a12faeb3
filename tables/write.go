package tables

import (
	"fmt"
	"io"
)

// WriteParseTable dumps a human-readable form of the table, for debugging.
func WriteParseTable(pt *ParseTable, out io.Writer) {
	out.Write([]byte("symbols:"))
	for i := 0; i < pt.NumSymbols(); i++ {
		out.Write([]byte(" " + pt.Symbol(i).String()))
	}
	out.Write([]byte("\n"))
	for i := 0; i < pt.NumStates(); i++ {
		WriteParseState(i, pt.State(i), out)
	}
}

func WriteParseState(idx int, ps *ParseState, out io.Writer) {
	out.Write([]byte(fmt.Sprintf("(%d) lex-state %d\n", idx, ps.LexStateID())))
	for i := 0; i < ps.NumEntries(); i++ {
		out.Write([]byte(fmt.Sprintf("  %s ->", ps.EntrySymbol(i))))
		for _, pa := range ps.EntryActions(i) {
			out.Write([]byte(fmt.Sprintf(" {%s}", pa)))
		}
		out.Write([]byte("\n"))
	}
}

// WriteLexTable dumps a human-readable form of the table, for debugging.
func WriteLexTable(lt *LexTable, out io.Writer) {
	for i := 0; i < lt.NumStates(); i++ {
		WriteLexState(fmt.Sprintf("%d", i), lt.State(i), out)
	}
	WriteLexState("error", lt.ErrorState(), out)
}

func WriteLexState(label string, ls *LexState, out io.Writer) {
	out.Write([]byte(fmt.Sprintf("(%s)\n", label)))
	for i := 0; i < ls.NumEntries(); i++ {
		out.Write([]byte(fmt.Sprintf("  %s ->", ls.EntrySet(i))))
		for _, la := range ls.EntryActions(i) {
			out.Write([]byte(fmt.Sprintf(" {%s}", la)))
		}
		out.Write([]byte("\n"))
	}
	out.Write([]byte("  default ->"))
	for _, la := range ls.DefaultActions() {
		out.Write([]byte(fmt.Sprintf(" {%s}", la)))
	}
	out.Write([]byte("\n"))
}
