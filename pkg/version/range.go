package version

import (
	"fmt"
	"strings"
)

// Operator is a version constraint operator.
type Operator string

const (
	OpAny          Operator = "*"
	OpEqual        Operator = "="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// operators are ordered so that the longest prefix matches first
var operators = []struct {
	prefix string
	op     Operator
}{
	{">>", OpGreater},
	{"<<", OpLess},
	{">=", OpGreaterEqual},
	{"<=", OpLessEqual},
	{"=>", OpGreaterEqual},
	{"=<", OpLessEqual},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEqual},
}

// Range constrains acceptable versions of a package.
// The zero value accepts any version.
type Range struct {
	Op      Operator
	Version Version
}

// Any returns a Range that accepts every version.
func Any() Range {
	return Range{Op: OpAny}
}

// ParseRange parses constraints such as ">= 1.0", "<< 2", "0.5" or "*".
// A bare version is treated as an exact match.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(OpAny) {
		return Any(), nil
	}
	op := OpEqual
	for _, o := range operators {
		if strings.HasPrefix(s, o.prefix) {
			op = o.op
			s = strings.TrimSpace(strings.TrimPrefix(s, o.prefix))
			break
		}
	}
	if s == "" {
		return Range{}, fmt.Errorf("missing version in constraint: '%s'", op)
	}
	v, err := Parse(s)
	if err != nil {
		return Range{}, err
	}
	return Range{Op: op, Version: v}, nil
}

// MustParseRange is like ParseRange but panics on error.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) IsAny() bool {
	return r.Op == "" || r.Op == OpAny
}

func (r Range) String() string {
	if r.IsAny() {
		return string(OpAny)
	}
	return fmt.Sprintf("%s %s", r.Op, r.Version)
}

// Contains reports whether v satisfies the constraint. The zero
// Version only satisfies the any-range.
func (r Range) Contains(v Version) bool {
	if r.IsAny() {
		return true
	}
	if v.IsZero() {
		return false
	}
	c := v.Compare(r.Version)
	switch r.Op {
	case OpEqual:
		return c == 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	default:
		return false
	}
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Range) UnmarshalText(text []byte) error {
	out, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = out
	return nil
}

func (r *Range) UnmarshalJSON(data []byte) error {
	text, err := unquote(data)
	if err != nil {
		return err
	}
	return r.UnmarshalText(text)
}
