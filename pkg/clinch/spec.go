// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind distinguishes a named option from a positional parameter.
type Kind int

const (
	NamedOption Kind = iota
	Positional
)

func (k Kind) String() string {
	if k == Positional {
		return "positional"
	}
	return "named option"
}

// Aggregate records whether a spec's value is a single scalar or a
// collection, and if so what shape the host's Sink expects it in.
type Aggregate int

const (
	Single Aggregate = iota
	ArrayOf
	ListOf
)

// Unbounded is the ArityRange.Max sentinel for an unbounded upper arity
// (the "*" or "N..*" spellings).
const Unbounded = math.MaxInt

// ArityRange is the [min..max] number of value tokens a spec consumes.
// Variable records whether the declaration wrote an explicit upper bound
// (e.g. "1..3") or an unbounded sentinel (e.g. "1..*" or "*").
type ArityRange struct {
	Min      int
	Max      int
	Variable bool
}

// ParseArity parses arity spellings of the form "N" (fixed), "N..M"
// (bounded range), or "N..*"/"*" (unbounded).
func ParseArity(s string) (ArityRange, error) {
	s = strings.TrimSpace(s)
	if s == "*" {
		return ArityRange{Min: 0, Max: Unbounded, Variable: true}, nil
	}
	if !strings.Contains(s, "..") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return ArityRange{}, fmt.Errorf("invalid arity %q", s)
		}
		return ArityRange{Min: n, Max: n}, nil
	}
	parts := strings.SplitN(s, "..", 2)
	minV, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || minV < 0 {
		return ArityRange{}, fmt.Errorf("invalid arity %q", s)
	}
	hi := strings.TrimSpace(parts[1])
	if hi == "*" {
		return ArityRange{Min: minV, Max: Unbounded, Variable: true}, nil
	}
	maxV, err := strconv.Atoi(hi)
	if err != nil || maxV < minV {
		return ArityRange{}, fmt.Errorf("invalid arity %q", s)
	}
	return ArityRange{Min: minV, Max: maxV, Variable: false}, nil
}

func (a ArityRange) String() string {
	if a.Min == a.Max && !a.Variable {
		return strconv.Itoa(a.Min)
	}
	if a.Max == Unbounded {
		return fmt.Sprintf("%d..*", a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}

// Type identifies a scalar target type for conversion purposes. Built-in
// identifiers are declared below; callers may mint their own for
// domain-object and enum types and register a converter for them.
type Type string

const (
	TypeString    Type = "string"
	TypeBool      Type = "bool"
	TypeChar      Type = "char"
	TypeInt       Type = "int"
	TypeInt64     Type = "int64"
	TypeUint      Type = "uint"
	TypeUint64    Type = "uint64"
	TypeBigInt    Type = "bigint"
	TypeFloat64   Type = "float64"
	TypeBigFloat  Type = "bigfloat"
	TypeURL       Type = "url"
	TypeURI       Type = "uri"
	TypeFilePath  Type = "filepath"
	TypeDate      Type = "date"
	TypeTime      Type = "time"
	TypeCharset   Type = "charset"
	TypeInetAddr  Type = "inetaddr"
	TypePattern   Type = "pattern"
	TypeUUID      Type = "uuid"
)

// IsShortName reports whether name has the "short" shape: exactly one
// prefix rune followed by exactly one alphanumeric rune.
func IsShortName(name string) bool {
	if utf8.RuneCountInString(name) != 2 {
		return false
	}
	runes := []rune(name)
	r := runes[1]
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ParameterSpec is the neutral description of one option or positional
// parameter. How it is produced (reflection, a builder, a config file) is
// outside clinch's concern; clinch only ever reads a []ParameterSpec.
type ParameterSpec struct {
	Kind             Kind
	Names            []string
	Arity            ArityRange
	ValueType        Type
	Aggregate        Aggregate
	ElementType      Type
	Required         bool
	Label            string
	Hidden           bool
	HelpFlag         bool
	DeclarationOrder int

	// id is stamped by NewCommandModel and gives external tooling (e.g.
	// a completion generator, explicitly out of this library's scope) a
	// stable, non-positional handle per spec.
	id uuid.UUID
}

// ID returns the spec's construction-time identity. It is stable for the
// lifetime of the owning CommandModel and has no bearing on parsing,
// sorting, or equality — those all use DeclarationOrder or pointer identity.
func (p *ParameterSpec) ID() uuid.UUID { return p.id }

// PrimaryName returns the spec's first declared name for NamedOption specs,
// or its display label for Positional specs — the identifier error messages
// quote.
func (p *ParameterSpec) PrimaryName() string {
	if p.Kind == Positional {
		if p.Label != "" {
			return p.Label
		}
		return "<positional>"
	}
	if len(p.Names) == 0 {
		return ""
	}
	return p.Names[0]
}

// convertType returns the Type a converter lookup should use: ElementType
// for aggregates, ValueType for scalars.
func (p *ParameterSpec) convertType() Type {
	if p.Aggregate != Single {
		return p.ElementType
	}
	return p.ValueType
}

func (p *ParameterSpec) isPureFlag() bool {
	return p.Arity.Max == 0
}

// SpecOption customizes a ParameterSpec at construction time. Options run
// in order after the default arity has been computed, so WithArity wins
// over the default; among options that set the arity, the last one wins.
type SpecOption func(*ParameterSpec)

func WithArity(a ArityRange) SpecOption { return func(p *ParameterSpec) { p.Arity = a } }
func WithRequired() SpecOption          { return func(p *ParameterSpec) { p.Required = true } }
func WithLabel(label string) SpecOption { return func(p *ParameterSpec) { p.Label = label } }
func WithHidden() SpecOption            { return func(p *ParameterSpec) { p.Hidden = true } }
func WithHelpFlag() SpecOption {
	return func(p *ParameterSpec) {
		p.HelpFlag = true
		p.ValueType = TypeBool
		p.ElementType = TypeBool
		p.Arity = ArityRange{Min: 0, Max: 0}
	}
}

// WithAggregate marks the spec as an array or list of elementType.
// It sets the arity to 0..*, replacing any arity an earlier WithArity set;
// a WithArity listed after it takes effect.
func WithAggregate(kind Aggregate, elementType Type) SpecOption {
	return func(p *ParameterSpec) {
		p.Aggregate = kind
		p.ElementType = elementType
		if kind != Single {
			p.Arity = ArityRange{Min: 0, Max: Unbounded, Variable: true}
		}
	}
}

// NewOption declares a NamedOption spec. Its default arity is 0 for
// bool, 1 for scalars, before any SpecOption runs.
func NewOption(names []string, valueType Type, opts ...SpecOption) ParameterSpec {
	p := ParameterSpec{
		Kind:        NamedOption,
		Names:       append([]string(nil), names...),
		ValueType:   valueType,
		ElementType: valueType,
		Arity:       defaultArity(valueType, Single),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewPositional declares the single positional spec. As with NewOption,
// default arity is 0 for bool, 1 for scalars.
func NewPositional(valueType Type, opts ...SpecOption) ParameterSpec {
	p := ParameterSpec{
		Kind:        Positional,
		ValueType:   valueType,
		ElementType: valueType,
		Arity:       defaultArity(valueType, Single),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func defaultArity(valueType Type, agg Aggregate) ArityRange {
	if agg != Single {
		return ArityRange{Min: 0, Max: Unbounded, Variable: true}
	}
	if valueType == TypeBool {
		return ArityRange{Min: 0, Max: 0}
	}
	return ArityRange{Min: 1, Max: 1}
}
