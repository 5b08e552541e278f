// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinchhelp

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shayfen/clinch/pkg/clinch"
)

// UsageOption customizes WriteUsage's output.
type UsageOption func(*usageSettings)

type usageSettings struct {
	programName   string
	detailed      bool
	separator     string
	tableWidth    int
	sink          clinch.Sink
	rowRenderer   RowRenderer
	order         func([]*clinch.ParameterSpec)
}

// WithProgramName overrides the usage line's program name.
func WithProgramName(name string) UsageOption {
	return func(s *usageSettings) { s.programName = name }
}

// Detailed selects the detailed usage form: every non-hidden option
// enumerated with its per-arity bracket template, plus the option-detail
// table beneath it. Compact (the default) renders only "[OPTIONS]" plus
// the positional shape.
func Detailed() UsageOption { return func(s *usageSettings) { s.detailed = true } }

// WithTableWidth sets the total width NewDefaultColumns uses for the
// option-detail table — the seam cmd/clinchdemo feeds a terminal-detected
// width through.
func WithTableWidth(width int) UsageOption {
	return func(s *usageSettings) { s.tableWidth = width }
}

// WithSink supplies the Sink whose DefaultLabel answers fill in labels for
// specs that did not declare one explicitly.
func WithSink(sink clinch.Sink) UsageOption {
	return func(s *usageSettings) { s.sink = sink }
}

// WithRowRenderer overrides the row renderer used for the option-detail
// table. Defaults to DefaultRow.
func WithRowRenderer(r RowRenderer) UsageOption {
	return func(s *usageSettings) { s.rowRenderer = r }
}

// WithSortOrder overrides the order VisibleOptions lists options in.
func WithSortOrder(order func([]*clinch.ParameterSpec)) UsageOption {
	return func(s *usageSettings) { s.order = order }
}

// WriteUsage renders model's usage help to w.
func WriteUsage(model *clinch.CommandModel, w io.Writer, opts ...UsageOption) error {
	s := &usageSettings{
		programName: "program",
		separator:   model.Separator(),
		tableWidth:  80,
		rowRenderer: DefaultRow,
		order:       clinch.SortByShortestOptionName,
	}
	for _, opt := range opts {
		opt(s)
	}

	header := usageLine(model, s)
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}

	if !s.detailed {
		return nil
	}

	opts2 := VisibleOptions(model, s.order)
	if len(opts2) == 0 {
		return nil
	}
	table := NewTextTable(NewDefaultColumns(s.tableWidth))
	for _, p := range opts2 {
		row := s.rowRenderer(p, s.sink, " ", "")
		if err := table.AddRow(row...); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, table.Render()+"\n")
	return err
}

func usageLine(model *clinch.CommandModel, s *usageSettings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s", s.programName)

	if !s.detailed {
		b.WriteString(" [OPTIONS]")
		b.WriteString(positionalSuffix(model, s.sink))
		return b.String()
	}

	required, optional := clusterBooleans(model)
	if len(required) > 0 {
		b.WriteString(" -" + required)
	}
	if len(optional) > 0 {
		b.WriteString(" [-" + optional + "]")
	}

	for _, p := range VisibleOptions(model, s.order) {
		if p.ValueType == clinch.TypeBool && p.Aggregate == clinch.Single && p.Arity.Max == 0 && shortestShort(p.Names) != "" {
			continue // already folded into a cluster above
		}
		b.WriteString(" " + arityTemplate(p, model.Separator(), s.sink))
	}

	b.WriteString(positionalSuffix(model, s.sink))
	return b.String()
}

func positionalSuffix(model *clinch.CommandModel, sink clinch.Sink) string {
	p := model.Positional()
	if p == nil {
		return ""
	}
	label := Label(p, sink, "")
	if p.Arity.Max == clinch.Unbounded || p.Arity.Max > 1 {
		if p.Arity.Min == 0 {
			return " [" + label + "...]"
		}
		return " " + label + " [" + label + "...]"
	}
	return " " + label
}

// clusterBooleans groups non-hidden pure-flag options by their shortest
// short name in ascending code-point order: required booleans form one
// un-bracketed cluster, optional booleans a separate bracketed one.
func clusterBooleans(model *clinch.CommandModel) (required, optional string) {
	var req, opt []string
	for _, p := range model.NamedOptions() {
		if p.Hidden || p.ValueType != clinch.TypeBool || p.Aggregate != clinch.Single || p.Arity.Max != 0 {
			continue
		}
		short := shortestShort(p.Names)
		if short == "" {
			continue
		}
		letter := string([]rune(short)[1])
		if p.Required {
			req = append(req, letter)
		} else {
			opt = append(opt, letter)
		}
	}
	sort.Strings(req)
	sort.Strings(opt)
	return strings.Join(req, ""), strings.Join(opt, "")
}

func shortestShort(names []string) string {
	for _, n := range names {
		if clinch.IsShortName(n) {
			return n
		}
	}
	return ""
}

// arityTemplate renders one value-taking option's usage-summary template
// based on its arity and required-ness.
func arityTemplate(p *clinch.ParameterSpec, separator string, sink clinch.Sink) string {
	name := shortestName(p)
	label := Label(p, sink, separator)
	required := p.Required

	switch {
	case p.Arity.Min == 0 && p.Arity.Max == 1:
		if required {
			return fmt.Sprintf("%s[%s]", name, label)
		}
		return fmt.Sprintf("[%s[%s]]", name, label)
	case p.Arity.Min == 0 && p.Arity.Max == clinch.Unbounded:
		if required {
			return fmt.Sprintf("%s[%s...]", name, label)
		}
		return fmt.Sprintf("[%s[%s...]]", name, label)
	case p.Arity.Min == 1 && p.Arity.Max == 1:
		if required {
			return fmt.Sprintf("%s%s", name, label)
		}
		return fmt.Sprintf("[%s%s]", name, label)
	case p.Arity.Min >= 1 && p.Arity.Max == clinch.Unbounded:
		elemLabel := strings.TrimPrefix(label, separator)
		if required {
			return fmt.Sprintf("%s%s [%s...]", name, label, elemLabel)
		}
		return fmt.Sprintf("[%s%s [%s...]]", name, label, elemLabel)
	default:
		if required {
			return fmt.Sprintf("%s%s", name, label)
		}
		return fmt.Sprintf("[%s%s]", name, label)
	}
}

func shortestName(p *clinch.ParameterSpec) string {
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
