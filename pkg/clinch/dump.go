// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import "gopkg.in/yaml.v3"

// specDump is a value-type mirror of ParameterSpec safe to marshal: the
// private id field is surfaced explicitly rather than skipped, since the
// whole point of DumpYAML is to let external tooling inspect it.
type specDump struct {
	Kind             string `yaml:"kind"`
	Names            []string `yaml:"names,omitempty"`
	Arity            string `yaml:"arity"`
	ValueType        string `yaml:"valueType"`
	ElementType      string `yaml:"elementType,omitempty"`
	Aggregate        string `yaml:"aggregate,omitempty"`
	Required         bool   `yaml:"required,omitempty"`
	Label            string `yaml:"label,omitempty"`
	Hidden           bool   `yaml:"hidden,omitempty"`
	HelpFlag         bool   `yaml:"helpFlag,omitempty"`
	DeclarationOrder int    `yaml:"declarationOrder"`
	ID               string `yaml:"id"`
}

// modelDump is the marshalled shape of a CommandModel, used only by
// cmd/clinchdemo's --dump-model diagnostic flag. It never participates in
// parsing or help rendering.
type modelDump struct {
	ProgramName string     `yaml:"programName,omitempty"`
	Separator   string     `yaml:"separator"`
	Specs       []specDump `yaml:"specs"`
}

func aggregateName(a Aggregate) string {
	switch a {
	case ArrayOf:
		return "array"
	case ListOf:
		return "list"
	default:
		return ""
	}
}

// DumpYAML renders model as YAML for debugging — what every spec resolved
// to, in declaration order, including each spec's construction-time id.
func DumpYAML(model *CommandModel) ([]byte, error) {
	dump := modelDump{
		ProgramName: model.programName,
		Separator:   model.separator,
	}
	for i := range model.specs {
		p := &model.specs[i]
		dump.Specs = append(dump.Specs, specDump{
			Kind:             p.Kind.String(),
			Names:            p.Names,
			Arity:            p.Arity.String(),
			ValueType:        string(p.ValueType),
			ElementType:      string(p.ElementType),
			Aggregate:        aggregateName(p.Aggregate),
			Required:         p.Required,
			Label:            p.Label,
			Hidden:           p.Hidden,
			HelpFlag:         p.HelpFlag,
			DeclarationOrder: p.DeclarationOrder,
			ID:               p.id.String(),
		})
	}
	return yaml.Marshal(dump)
}
