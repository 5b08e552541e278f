// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/shayfen/clinch/pkg/clinch"
)

// TestConcurrentParsesWithIndependentSinks exercises the concurrency
// guarantee that a single CommandModel is safe to parse from many
// goroutines at once, provided each parse owns its own Sink.
func TestConcurrentParsesWithIndependentSinks(t *testing.T) {
	model, err := clinch.NewCommandModel(buildSpecs(), clinch.WithProgramName("clinchdemo"))
	if err != nil {
		t.Fatalf("NewCommandModel: %v", err)
	}
	outputSpec, _ := model.Lookup("--output")

	var g errgroup.Group
	results := make([]string, 32)
	for n := 0; n < 32; n++ {
		n := n
		g.Go(func() error {
			sink := clinch.NewMapSink(buildLabels(model))
			args := []string{"--output", "file" + strconv.Itoa(n)}
			if err := clinch.Parse(model, sink, args); err != nil {
				return err
			}
			v, _ := sink.Scalar(outputSpec.ID())
			results[n] = v.(string)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent parse: %v", err)
	}
	for n, r := range results {
		want := "file" + strconv.Itoa(n)
		if r != want {
			t.Errorf("goroutine %d: got %q, want %q", n, r, want)
		}
	}
}
