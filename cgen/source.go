// Package cgen turns a parse table and a lex table into the C dispatch
// code executed by the table-driven runtime.
package cgen

type sourceLine struct {
	depth int
	text  string
}

// sourceBuilder accumulates (indent, text) line records and renders them
// once.  Nested emission pushes and pops the current depth instead of
// rescanning accumulated text.
type sourceBuilder struct {
	lines []sourceLine
	depth int
}

const indentUnit = "    "

func (sb *sourceBuilder) line(text string) {
	sb.lines = append(sb.lines, sourceLine{depth: sb.depth, text: text})
}

// blank separates top-level blocks; it renders with no indentation.
func (sb *sourceBuilder) blank() {
	sb.lines = append(sb.lines, sourceLine{})
}

func (sb *sourceBuilder) push() {
	sb.depth++
}

func (sb *sourceBuilder) pop() {
	if sb.depth == 0 {
		panic("pop() called at zero indent depth")
	}
	sb.depth--
}

func (sb *sourceBuilder) render() string {
	var buf []byte
	for _, ln := range sb.lines {
		if ln.text != "" {
			for i := 0; i < ln.depth; i++ {
				buf = append(buf, indentUnit...)
			}
			buf = append(buf, ln.text...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
