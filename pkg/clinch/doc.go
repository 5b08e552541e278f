// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clinch is a command-line argument-parsing and usage-rendering
// engine. It does not know how a host program declares its parameters or
// how parsed values get written back into the host's config object — it
// consumes a neutral ParameterSpec model and a Sink capability instead.
//
// # Basic usage
//
//	specs := []clinch.ParameterSpec{
//	    clinch.NewOption([]string{"-v", "--verbose"}, clinch.TypeBool),
//	    clinch.NewOption([]string{"-o", "--output"}, clinch.TypeString, clinch.WithRequired()),
//	}
//	model, err := clinch.NewCommandModel(specs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sink := myconfig.NewSink(&cfg)
//	if err := clinch.Parse(model, sink, os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//
// Rendering usage text for the same model is independent of parsing and
// reads only the CommandModel; see the clinchhelp package.
package clinch
