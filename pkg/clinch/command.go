// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import (
	"sort"

	"github.com/google/uuid"
)

// CommandModel is the indexed, immutable set of specs for one command plus
// its program-level settings. Build it once with NewCommandModel; it is
// safe to share across goroutines for concurrent reads, including
// concurrent parses that each own their own Sink.
type CommandModel struct {
	specs      []ParameterSpec
	byName     map[string]*ParameterSpec
	positional *ParameterSpec

	separator           string
	programName         string
	summaryLines        []string
	footer              string
	detailedUsageHeader string
	strictPositionals   bool
	converters          *ConverterRegistry
}

// CommandOption customizes a CommandModel at construction time.
type CommandOption func(*CommandModel)

// WithSeparator sets the option/value separator (e.g. "=") recognized by
// the prefix+separator name-matching rule. Default is "=".
func WithSeparator(sep string) CommandOption {
	return func(m *CommandModel) { m.separator = sep }
}

// WithProgramName records the program name on the model; DumpYAML reports
// it. clinchhelp.WriteUsage does not read it: the usage line takes its
// program name from clinchhelp.WithProgramName instead.
func WithProgramName(name string) CommandOption {
	return func(m *CommandModel) { m.programName = name }
}

// WithSummaryLines stores freeform summary lines on the model.
// clinchhelp.WriteUsage does not render them.
func WithSummaryLines(lines ...string) CommandOption {
	return func(m *CommandModel) { m.summaryLines = append([]string(nil), lines...) }
}

// WithFooter stores freeform footer text on the model.
// clinchhelp.WriteUsage does not render it.
func WithFooter(footer string) CommandOption {
	return func(m *CommandModel) { m.footer = footer }
}

// WithDetailedUsageHeader stores a usage header string on the model.
// clinchhelp.WriteUsage does not read it and always writes "Usage:".
func WithDetailedUsageHeader(header string) CommandOption {
	return func(m *CommandModel) { m.detailedUsageHeader = header }
}

// WithStrictPositionals opts into UnknownOption-shaped errors for extra
// positional tokens on a command with no positional spec, instead of the
// default silent-discard behavior.
func WithStrictPositionals() CommandOption {
	return func(m *CommandModel) { m.strictPositionals = true }
}

// WithConverterRegistry swaps in a caller-prepared registry (e.g. one with
// extra Register/RegisterEnum calls already applied) instead of the
// default built-in set.
func WithConverterRegistry(reg *ConverterRegistry) CommandOption {
	return func(m *CommandModel) { m.converters = reg }
}

// NewCommandModel indexes specs, stamping each with a stable id and
// validating that no two names collide across any NamedOption spec, and
// that at most one Positional spec exists.
func NewCommandModel(specs []ParameterSpec, opts ...CommandOption) (*CommandModel, error) {
	m := &CommandModel{
		specs:     make([]ParameterSpec, len(specs)),
		byName:    make(map[string]*ParameterSpec),
		separator: "=",
	}
	copy(m.specs, specs)

	for i := range m.specs {
		m.specs[i].DeclarationOrder = i
		m.specs[i].id = uuid.New()
	}

	for i := range m.specs {
		p := &m.specs[i]
		switch p.Kind {
		case NamedOption:
			for _, name := range p.Names {
				if _, exists := m.byName[name]; exists {
					return nil, &DuplicateParameterNameError{Name: name}
				}
				m.byName[name] = p
			}
		case Positional:
			if m.positional != nil {
				return nil, &MultiplePositionalSpecsError{}
			}
			m.positional = p
		}
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.converters == nil {
		m.converters = NewConverterRegistry()
	}
	return m, nil
}

// Specs returns the model's specs in declaration order. Callers must not
// mutate the returned slice's elements' Names/Arity in place; treat it as
// read-only.
func (m *CommandModel) Specs() []ParameterSpec {
	out := make([]ParameterSpec, len(m.specs))
	copy(out, m.specs)
	return out
}

// Positional returns the model's single positional spec, or nil if none
// was declared.
func (m *CommandModel) Positional() *ParameterSpec { return m.positional }

// Lookup returns the spec registered under name, if any.
func (m *CommandModel) Lookup(name string) (*ParameterSpec, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// Separator returns the configured option/value separator.
func (m *CommandModel) Separator() string { return m.separator }

// Converters returns the model's converter registry.
func (m *CommandModel) Converters() *ConverterRegistry { return m.converters }

// NamedOptions returns only the NamedOption specs, in declaration order.
func (m *CommandModel) NamedOptions() []*ParameterSpec {
	out := make([]*ParameterSpec, 0, len(m.specs))
	for i := range m.specs {
		if m.specs[i].Kind == NamedOption {
			out = append(out, &m.specs[i])
		}
	}
	return out
}

// SortShortestFirst orders specs strictly by their shortest declared
// name's length ascending, then by declaration order ascending — NOT
// alphabetically.
func SortShortestFirst(specs []*ParameterSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		a, b := shortestName(specs[i]), shortestName(specs[j])
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return specs[i].DeclarationOrder < specs[j].DeclarationOrder
	})
}

// SortByShortestOptionName compares two specs by their shortest declared
// name, ascending.
func SortByShortestOptionName(specs []*ParameterSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		return shortestName(specs[i]) < shortestName(specs[j])
	})
}

// SortByOptionArityAndName orders specs by arity.Max ascending, then
// arity.Min ascending, then shortest declared name ascending.
func SortByOptionArityAndName(specs []*ParameterSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		if specs[i].Arity.Max != specs[j].Arity.Max {
			return specs[i].Arity.Max < specs[j].Arity.Max
		}
		if specs[i].Arity.Min != specs[j].Arity.Min {
			return specs[i].Arity.Min < specs[j].Arity.Min
		}
		return shortestName(specs[i]) < shortestName(specs[j])
	})
}

// SortByDeclarationOrder restores the order specs were passed to
// NewCommandModel in.
func SortByDeclarationOrder(specs []*ParameterSpec) {
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].DeclarationOrder < specs[j].DeclarationOrder
	})
}

func shortestName(p *ParameterSpec) string {
	if len(p.Names) == 0 {
		return ""
	}
	shortest := p.Names[0]
	for _, n := range p.Names[1:] {
		if len(n) < len(shortest) {
			shortest = n
		}
	}
	return shortest
}
