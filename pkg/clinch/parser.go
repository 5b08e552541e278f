// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import "strings"

// CommandLine is a reusable parser bound to one CommandModel, split out as
// its own type so a host can parse the same model repeatedly (e.g. once
// per incoming request) without re-validating the model each time.
type CommandLine struct {
	model *CommandModel

	// helpTriggered latches once some matched spec's HelpFlag fires during
	// a parse, suppressing the end-of-parse MissingRequiredOption check
	// for that call. It lives here, on the CommandLine that owns one
	// parse at a time, rather than on the neutral Sink interface, so Sink
	// implementations never need to know about it. Reset at the start of
	// every Parse call.
	helpTriggered bool
}

// NewCommandLine wraps model for repeated parsing.
func NewCommandLine(model *CommandModel) *CommandLine {
	return &CommandLine{model: model}
}

// SetSeparator overrides the model's configured separator for this
// CommandLine's future parses, without mutating the shared CommandModel.
// An empty separator is rejected with an IllegalArgumentUsageError and the
// current separator is kept.
func (c *CommandLine) SetSeparator(sep string) error {
	if sep == "" {
		return &IllegalArgumentUsageError{Message: "CommandLine.SetSeparator: separator must not be empty"}
	}
	m := *c.model
	m.separator = sep
	c.model = &m
	return nil
}

// Separator returns the separator this CommandLine currently parses with.
func (c *CommandLine) Separator() string { return c.model.Separator() }

// Parse walks args against c's model, writing matched values through sink.
func (c *CommandLine) Parse(sink Sink, args []string) error {
	c.helpTriggered = false
	return runParse(c.model, sink, args, &c.helpTriggered)
}

// Parse is the one-shot convenience wrapper for callers that don't need a
// reusable CommandLine: build a throwaway latch, parse once, discard it.
func Parse(model *CommandModel, sink Sink, args []string) error {
	var latch bool
	return runParse(model, sink, args, &latch)
}

func runParse(model *CommandModel, sink Sink, args []string, helpTriggered *bool) error {
	var positionals []string
	matched := make(map[*ParameterSpec]bool)

	i := 0
	afterDoubleDash := false
	for i < len(args) {
		tok := args[i]

		if afterDoubleDash {
			positionals = append(positionals, tok)
			i++
			continue
		}
		if tok == "--" {
			afterDoubleDash = true
			i++
			continue
		}
		if !hasOptionMatch(model, tok) {
			positionals = append(positionals, tok)
			i++
			continue
		}

		newI, err := consumeNamedToken(model, sink, tok, args, i, matched, helpTriggered)
		if err != nil {
			return err
		}
		i = newI
	}

	if err := assignPositionals(model, sink, positionals); err != nil {
		return err
	}

	if !*helpTriggered {
		for j := range model.specs {
			p := &model.specs[j]
			if p.Required && !matched[p] {
				return &MissingRequiredOptionError{Name: p.PrimaryName()}
			}
		}
	}

	return nil
}

// hasOptionMatch reports whether tok matches some NamedOption spec at
// all (exact, prefix+separator, or short-name/cluster head), without
// performing any value consumption. Used by the classifier to decide
// positional-vs-option before committing to consumeNamedToken.
func hasOptionMatch(model *CommandModel, tok string) bool {
	if _, ok := model.Lookup(tok); ok {
		return true
	}
	if sep := model.Separator(); sep != "" {
		if _, _, ok := matchPrefixSeparator(model, tok, sep); ok {
			return true
		}
	}
	runes := []rune(tok)
	if len(runes) >= 2 {
		if _, ok := model.byName[string(runes[:2])]; ok {
			return true
		}
	}
	return false
}

// consumeNamedToken resolves tok to its matching spec(s) and performs all
// value consumption, conversion, and Sink writes for it, returning the
// cursor position to resume the outer loop at. Handles the three ways a
// token can name an option: an exact match against some declared name, a
// name+separator prefix with an attached value, or a short-name cluster
// where a leading pure flag chains into further short names.
func consumeNamedToken(model *CommandModel, sink Sink, tok string, args []string, i int, matched map[*ParameterSpec]bool, helpTriggered *bool) (int, error) {
	if p, ok := model.Lookup(tok); ok {
		return consumeOne(model, sink, p, "", false, args, i+1, matched, helpTriggered)
	}

	sep := model.Separator()
	if sep != "" {
		if p, rest, ok := matchPrefixSeparator(model, tok, sep); ok {
			return consumeOne(model, sink, p, rest, true, args, i+1, matched, helpTriggered)
		}
	}

	runes := []rune(tok)
	head := string(runes[:2])
	p := model.byName[head]
	remainder := string(runes[2:])

	if remainder == "" {
		return consumeOne(model, sink, p, "", false, args, i+1, matched, helpTriggered)
	}

	if !p.isPureFlag() {
		// Value-taking short option with an attached remainder: the
		// whole remainder (minus a leading separator) is its value.
		rest := strings.TrimPrefix(remainder, sep)
		return consumeOne(model, sink, p, rest, true, args, i+1, matched, helpTriggered)
	}

	// Clustered short flags: walk the remainder character by character.
	// Each must itself be a valid short name. Pure flags chain; the
	// first value-taking short option found takes the rest of the
	// string as its value and ends the cluster.
	if err := markFlag(sink, p, matched, helpTriggered); err != nil {
		return i, err
	}
	clusterRunes := []rune(remainder)
	for idx := 0; idx < len(clusterRunes); idx++ {
		short := "-" + string(clusterRunes[idx])
		cp, ok := model.byName[short]
		if !ok {
			return i, &UnknownOptionError{Token: tok}
		}
		if cp.isPureFlag() {
			if err := markFlag(sink, cp, matched, helpTriggered); err != nil {
				return i, err
			}
			continue
		}
		rest := strings.TrimPrefix(string(clusterRunes[idx+1:]), sep)
		return consumeOne(model, sink, cp, rest, true, args, i+1, matched, helpTriggered)
	}
	return i + 1, nil
}

func markFlag(sink Sink, p *ParameterSpec, matched map[*ParameterSpec]bool, helpTriggered *bool) error {
	matched[p] = true
	if p.HelpFlag {
		*helpTriggered = true
	}
	return sink.SetScalar(p.id, true)
}

// consumeOne consumes the value tokens a single matched spec is entitled
// to, converts them, and writes them through sink, given any inline value
// already attached to its token. followingFrom is the args index of the
// first token after the one that matched.
func consumeOne(model *CommandModel, sink Sink, spec *ParameterSpec, inline string, hasInline bool, args []string, followingFrom int, matched map[*ParameterSpec]bool, helpTriggered *bool) (int, error) {
	matched[spec] = true
	if spec.HelpFlag {
		*helpTriggered = true
	}

	var values []string
	i := followingFrom

	if hasInline {
		if spec.isPureFlag() {
			if _, err := convertBool(inline); err != nil {
				return i, &TypeConversionError{Token: inline, TypeName: string(TypeBool), Name: spec.PrimaryName(), Err: err}
			}
			values = append(values, inline)
		} else {
			values = append(values, stripQuotes(inline))
		}
	}

	for len(values) < spec.Arity.Max || len(values) < spec.Arity.Min {
		if len(values) >= spec.Arity.Min {
			if i >= len(args) {
				break
			}
			next := args[i]
			if next == "--" {
				break
			}
			if isBooleanFenceSitter(spec) {
				if looksLikeBoolean(next) {
					values = append(values, stripQuotes(next))
					i++
				}
				break
			}
			if hasOptionMatch(model, next) {
				break
			}
		}
		if i >= len(args) {
			break
		}
		values = append(values, stripQuotes(args[i]))
		i++
	}

	if len(values) < spec.Arity.Min {
		return i, &MissingParameterError{Name: spec.PrimaryName(), Arity: spec.Arity, Got: len(values)}
	}

	if len(values) == 0 && spec.ValueType == TypeBool && spec.Aggregate == Single {
		// A matched boolean's presence is itself a value: a pure flag
		// (arity 0) never looks at a value token at all, and a
		// fence-sitting 0..* boolean may reject its candidate value
		// and still end up with none. Either way "matched with no
		// values" means true, the same way a bare "--flag" does.
		if err := sink.SetScalar(spec.id, true); err != nil {
			return i, err
		}
		return i, nil
	}

	for idx, v := range values {
		converted, err := convertOne(model, spec, v, idx)
		if err != nil {
			return i, err
		}
		if spec.Aggregate != Single {
			if err := sink.AppendElement(spec.id, converted); err != nil {
				return i, err
			}
		} else {
			if err := sink.SetScalar(spec.id, converted); err != nil {
				return i, err
			}
		}
	}

	return i, nil
}

// isBooleanFenceSitter reports whether spec is the "boolean option of
// arity 0..*" shape that consumes at most one following boolean-looking
// value, instead of behaving like either a plain flag or a greedy list.
func isBooleanFenceSitter(spec *ParameterSpec) bool {
	return spec.ValueType == TypeBool && spec.Aggregate == Single && spec.Arity.Min == 0 && spec.Arity.Max == Unbounded
}

func matchPrefixSeparator(model *CommandModel, tok, sep string) (*ParameterSpec, string, bool) {
	for name, p := range model.byName {
		if strings.HasPrefix(tok, name+sep) {
			return p, tok[len(name+sep):], true
		}
	}
	return nil, "", false
}

func looksLikeBoolean(tok string) bool {
	t := strings.ToLower(stripQuotes(tok))
	return t == "true" || t == "false"
}

func stripQuotes(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return tok[1 : len(tok)-1]
	}
	return tok
}

func convertOne(model *CommandModel, spec *ParameterSpec, token string, index int) (any, error) {
	t := spec.convertType()
	v, err := model.Converters().Convert(t, token)
	if err != nil {
		if _, ok := err.(*MissingTypeConverterError); ok {
			return nil, err
		}
		return nil, &TypeConversionError{
			Token:        token,
			TypeName:     string(t),
			Name:         spec.PrimaryName(),
			IsPositional: spec.Kind == Positional,
			Index:        index,
			Err:          err,
		}
	}
	return v, nil
}

func assignPositionals(model *CommandModel, sink Sink, tokens []string) error {
	p := model.Positional()
	if p == nil {
		if model.strictPositionals && len(tokens) > 0 {
			return &UnknownOptionError{Token: tokens[0]}
		}
		return nil
	}
	if len(tokens) < p.Arity.Min {
		return &MissingParameterError{Name: p.PrimaryName(), Arity: p.Arity, Got: len(tokens)}
	}
	for idx, tok := range tokens {
		v, err := convertOne(model, p, tok, idx)
		if err != nil {
			return err
		}
		if p.Aggregate != Single {
			if err := sink.AppendElement(p.id, v); err != nil {
				return err
			}
		} else {
			if err := sink.SetScalar(p.id, v); err != nil {
				return err
			}
		}
	}
	return nil
}
