package rules

import "errors"

type CharacterSetBuilder interface {
	Negate() CharacterSetBuilder
	AddCharacter(c rune) CharacterSetBuilder
	AddRange(least, greatest rune) CharacterSetBuilder
	Build() (CharacterSet, error)
	MustBuild() CharacterSet
}

func OpenCharacterSetBuilder() CharacterSetBuilder {
	return &characterSetBuilder{}
}

type characterSetBuilder struct {
	negated bool
	ranges  []CharacterRange
}

func (csb *characterSetBuilder) Negate() CharacterSetBuilder {
	csb.negated = !csb.negated
	return csb
}

func (csb *characterSetBuilder) AddCharacter(c rune) CharacterSetBuilder {
	csb.ranges = append(csb.ranges, CharacterRange{c, c})
	return csb
}

func (csb *characterSetBuilder) AddRange(least, greatest rune) CharacterSetBuilder {
	if least > greatest {
		panic("least value in range may not be greater than greatest")
	}
	csb.ranges = append(csb.ranges, CharacterRange{least, greatest})
	return csb
}

func (csb *characterSetBuilder) Build() (CharacterSet, error) {
	if len(csb.ranges) == 0 {
		return CharacterSet{}, errors.New("empty character set, AddRange() nor AddCharacter() called before Build()")
	}
	cs := NewCharacterSet(csb.ranges...)
	if csb.negated {
		cs = cs.Complement()
	}
	return cs, nil
}

func (csb *characterSetBuilder) MustBuild() CharacterSet {
	cs, err := csb.Build()
	if err != nil {
		panic(err.Error())
	}
	return cs
}
