package cgen

// Statement nodes form the intermediate representation of emitted dispatch
// code.  Encoding builds trees of these nodes; the single renderer below
// turns a tree into source lines.  Instructions are one-line primitive
// calls, switches hold labeled and default arms, and guards are the
// sequential if-chains of lexer states.

type stmt interface {
	emit(sb *sourceBuilder)
}

// call is a single primitive-operation instruction, e.g. "SHIFT(3);".
type call struct {
	text string
}

func (s call) emit(sb *sourceBuilder) {
	sb.line(s.text)
}

// caseArm is one labeled branch of a switch.
type caseArm struct {
	value string
	body  []stmt
}

func (s caseArm) emit(sb *sourceBuilder) {
	sb.line("case " + s.value + ":")
	sb.push()
	for _, b := range s.body {
		b.emit(sb)
	}
	sb.pop()
}

// defaultArm is the fallback branch of a switch.
type defaultArm struct {
	body []stmt
}

func (s defaultArm) emit(sb *sourceBuilder) {
	sb.line("default:")
	sb.push()
	for _, b := range s.body {
		b.emit(sb)
	}
	sb.pop()
}

// guard runs its body when the condition holds and otherwise falls through
// to whatever statement follows it.
type guard struct {
	cond string
	body []stmt
}

func (s guard) emit(sb *sourceBuilder) {
	sb.line("if (" + s.cond + ")")
	sb.push()
	for _, b := range s.body {
		b.emit(sb)
	}
	sb.pop()
}

// switchStmt dispatches on a subject expression over case and default arms.
type switchStmt struct {
	subject string
	arms    []stmt
}

func (s switchStmt) emit(sb *sourceBuilder) {
	sb.line("switch (" + s.subject + ") {")
	sb.push()
	for _, a := range s.arms {
		a.emit(sb)
	}
	sb.pop()
	sb.line("}")
}
