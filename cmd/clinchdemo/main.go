// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clinchdemo is a small reference program exercising clinch end
// to end: declaring specs, parsing argv into a MapSink, and rendering
// usage help on error or on -h/--help.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/google/uuid"

	"github.com/shayfen/clinch/internal/tui"
	"github.com/shayfen/clinch/pkg/clinch"
	"github.com/shayfen/clinch/pkg/clinchhelp"
)

// fieldNameByOptionName mirrors the host struct field a real program would
// bind each option to — NewMapSink needs these keyed by spec id, which
// only exists once the model is built, so buildLabels resolves this map
// against a live CommandModel.
var fieldNameByOptionName = map[string]string{
	"--verbose": "verbose",
	"--output":  "outputFile",
	"--retries": "retries",
	"--tag":     "tags",
}

func buildLabels(model *clinch.CommandModel) map[uuid.UUID]string {
	labels := make(map[uuid.UUID]string)
	for name, field := range fieldNameByOptionName {
		if p, ok := model.Lookup(name); ok {
			labels[p.ID()] = field
		}
	}
	if p := model.Positional(); p != nil {
		labels[p.ID()] = "files"
	}
	return labels
}

func buildSpecs() []clinch.ParameterSpec {
	return []clinch.ParameterSpec{
		clinch.NewOption([]string{"-h", "--help"}, clinch.TypeBool, clinch.WithHelpFlag(), clinch.WithLabel("")),
		clinch.NewOption([]string{"-v", "--verbose"}, clinch.TypeBool),
		clinch.NewOption([]string{"-o", "--output"}, clinch.TypeString, clinch.WithRequired(), clinch.WithLabel("FILE")),
		clinch.NewOption([]string{"-r", "--retries"}, clinch.TypeInt, clinch.WithArity(clinch.ArityRange{Min: 1, Max: 1}), clinch.WithLabel("N")),
		clinch.NewOption([]string{"-t", "--tag"}, clinch.TypeString, clinch.WithAggregate(clinch.ListOf, clinch.TypeString), clinch.WithLabel("TAG")),
		clinch.NewOption([]string{"--dump-model"}, clinch.TypeBool, clinch.WithHidden()),
		clinch.NewPositional(clinch.TypeFilePath, clinch.WithAggregate(clinch.ListOf, clinch.TypeFilePath), clinch.WithLabel("FILES")),
	}
}

func main() {
	model, err := clinch.NewCommandModel(buildSpecs(), clinch.WithProgramName("clinchdemo"))
	if err != nil {
		log.Fatalf("building command model: %v", err)
	}

	colors := tui.NewColorizer(true)
	sink := clinch.NewMapSink(buildLabels(model))

	if err := clinch.Parse(model, sink, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, colors.Error(err.Error()))
		printUsage(model, os.Stderr, colors)
		os.Exit(1)
	}

	if v, ok := sink.Scalar(helpSpec(model).ID()); ok && v == true {
		printUsage(model, os.Stdout, colors)
		return
	}

	if v, ok := sink.Scalar(dumpModelSpec(model).ID()); ok && v == true {
		out, err := clinch.DumpYAML(model)
		if err != nil {
			log.Fatalf("dumping model: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	report(sink, model, colors)
}

func printUsage(model *clinch.CommandModel, w *os.File, colors tui.Colorizer) {
	width := 80
	if wd, _, err := term.GetSize(int(w.Fd())); err == nil && wd > 0 {
		width = wd
	}
	var buf bytes.Buffer
	if err := clinchhelp.WriteUsage(model, &buf, clinchhelp.Detailed(), clinchhelp.WithTableWidth(width)); err != nil {
		log.Fatalf("rendering usage: %v", err)
	}
	fmt.Fprint(w, colors.Usage(buf.String()))
}

func helpSpec(model *clinch.CommandModel) *clinch.ParameterSpec {
	p, _ := model.Lookup("--help")
	return p
}

func dumpModelSpec(model *clinch.CommandModel) *clinch.ParameterSpec {
	p, _ := model.Lookup("--dump-model")
	return p
}

func report(sink *clinch.MapSink, model *clinch.CommandModel, colors tui.Colorizer) {
	outputSpec, _ := model.Lookup("--output")
	out, _ := sink.Scalar(outputSpec.ID())
	fmt.Printf("output: %v\n", out)

	tagSpec, _ := model.Lookup("--tag")
	for _, tag := range sink.Elements(tagSpec.ID()) {
		fmt.Printf("tag: %v\n", tag)
	}

	for _, f := range sink.Elements(model.Positional().ID()) {
		fmt.Printf("file: %v\n", f)
	}
}
