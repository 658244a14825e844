// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the netscope CLI: a web service and offline
// tools for analyzing neural network architectures.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/netscope-ml/netscope/internal/config"
	"github.com/netscope-ml/netscope/internal/persist"
	"github.com/netscope-ml/netscope/internal/render"
	"github.com/netscope-ml/netscope/internal/server"
	"github.com/netscope-ml/netscope/internal/session"
)

const version = "v0.1.0"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("netscope %s\n", version)
	case "serve":
		if err := serve(os.Args[2:]); err != nil {
			log.Fatal().Err(err).Msg("serve failed")
		}
	case "analyze":
		if err := analyze(os.Args[2:]); err != nil {
			log.Fatal().Err(err).Msg("analyze failed")
		}
	case "diagram":
		if err := diagram(os.Args[2:]); err != nil {
			log.Fatal().Err(err).Msg("diagram failed")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("netscope - neural network architecture analyzer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  serve    [-config path]          Start the analyzer API server")
	fmt.Println("  analyze  <architecture.json>     Print the analysis table for a saved architecture")
	fmt.Println("  diagram  <architecture.json> [-o out.svg]")
	fmt.Println("  version                          Show version")
}

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to the yaml config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	sessions := session.NewManager(cfg.InputShape.Shape())
	go func() {
		for range time.Tick(cfg.SessionTTL() / 2) {
			if removed := sessions.Prune(cfg.SessionTTL()); removed > 0 {
				log.Info().Int("removed", removed).Msg("pruned idle sessions")
			}
		}
	}()

	return server.New("netscope", cfg.Port, sessions).Run()
}

func analyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("analyze expects exactly one architecture file")
	}

	a, err := persist.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	summary := a.Summary()
	fmt.Print(render.Table(a.LayerDetails(), summary))
	fmt.Printf("\ninput: %s  output: %s  layers: %d  parameters: %d  receptive field: %s\n",
		summary.InputShape, summary.OutputShape, summary.TotalLayers,
		summary.TotalParams, summary.ReceptiveField)
	return nil
}

func diagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ExitOnError)
	out := fs.String("o", "architecture.svg", "output svg path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("diagram expects exactly one architecture file")
	}

	a, err := persist.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	svg := render.Diagram(a.LayerDetails(), a.Summary())
	if err := os.WriteFile(*out, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", *out, err)
	}
	log.Info().Str("path", *out).Msg("diagram written")
	return nil
}
