// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinchhelp

import (
	"sort"
	"strings"

	"github.com/shayfen/clinch/pkg/clinch"
)

// RowRenderer turns one visible spec into the column values AddRow
// expects for a given table shape.
type RowRenderer func(spec *clinch.ParameterSpec, sink clinch.Sink, separator string, description string) []string

// MinimalRow renders one row per option: [firstDeclaredName+label,
// description].
func MinimalRow(spec *clinch.ParameterSpec, sink clinch.Sink, separator, description string) []string {
	name := ""
	if len(spec.Names) > 0 {
		name = spec.Names[0]
	}
	return []string{name + Label(spec, sink, separator), description}
}

// DefaultRow renders the 7-column option table's default row shape:
// [shortestShortName, ",", otherNames+label, description]
// padded out to 5 leading columns to match the {2,2,1,3,1,20,51} shape —
// the comma cell is empty when the spec has no short name or no other
// names to pair it with.
func DefaultRow(spec *clinch.ParameterSpec, sink clinch.Sink, separator, description string) []string {
	shortest, rest := splitShortestShortName(spec.Names)
	comma := ""
	if shortest != "" && len(rest) > 0 {
		comma = ","
	}
	otherNames := strings.Join(rest, ", ") + Label(spec, sink, separator)
	return []string{"", shortest, comma, "", "", otherNames, description}
}

func splitShortestShortName(names []string) (string, []string) {
	shortIdx := -1
	for i, n := range names {
		if clinch.IsShortName(n) {
			shortIdx = i
			break
		}
	}
	if shortIdx == -1 {
		return "", names
	}
	rest := make([]string, 0, len(names)-1)
	rest = append(rest, names[:shortIdx]...)
	rest = append(rest, names[shortIdx+1:]...)
	return names[shortIdx], rest
}

// Label renders a spec's value-label cell. For a NamedOption: an
// explicit Label renders as separator+label; otherwise
// separator+"<"+sinkFieldName+">". Positional labels ignore separator.
func Label(spec *clinch.ParameterSpec, sink clinch.Sink, separator string) string {
	if spec.Kind == clinch.Positional {
		if spec.Label != "" {
			return spec.Label
		}
		return "<" + fieldName(spec, sink) + ">"
	}
	if spec.HelpFlag || spec.Arity.Max == 0 {
		return ""
	}
	if spec.Label != "" {
		return separator + spec.Label
	}
	return separator + "<" + fieldName(spec, sink) + ">"
}

func fieldName(spec *clinch.ParameterSpec, sink clinch.Sink) string {
	if sink == nil {
		return "value"
	}
	return sink.DefaultLabel(spec.ID())
}

// VisibleOptions returns model's NamedOption specs with Hidden == false,
// sorted per order.
func VisibleOptions(model *clinch.CommandModel, order func([]*clinch.ParameterSpec)) []*clinch.ParameterSpec {
	var out []*clinch.ParameterSpec
	for _, p := range model.NamedOptions() {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	if order != nil {
		order(out)
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].DeclarationOrder < out[j].DeclarationOrder })
	}
	return out
}
