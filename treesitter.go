// Package treesitter generates the C dispatch code for a table-driven
// parsing virtual machine from an already-computed LR parse table and
// lexical scan table.  Table construction lives in tables/, symbol and
// character-class values in rules/, and the code generation backend in
// cgen/; this package fronts the pipeline.
package treesitter

import (
	"github.com/rehan678p/tree-sitter/cgen"
	"github.com/rehan678p/tree-sitter/tables"
)

// GenerateC is the whole pipeline: validate both tables and render one C
// source artifact bound to the given language name.  It is a pure function
// of its inputs; byte-identical inputs produce byte-identical output.
func GenerateC(name string, parseTable *tables.ParseTable, lexTable *tables.LexTable) (string, error) {
	return cgen.New(name, parseTable, lexTable).Code()
}
