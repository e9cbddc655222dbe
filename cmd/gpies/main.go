// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gpies drives a cluster-dynamics simulation from the command
// line: load a configuration, advance an engine, and export or persist
// the result. The name follows the original tool's own name for this
// irradiation-damage simulator.
//
// Flag/subcommand structure grounded on bebop-poly/poly/main.go's
// cli.App{Flags, Commands} shape; .env loading grounded on
// jndunlap-gohypo/main.go's godotenv.Load() call before config.Load().
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/cpmech/clusterdyn/config"
	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/clusterdyn/export"
	"github.com/cpmech/clusterdyn/httpapi"
	"github.com/cpmech/clusterdyn/report"
	"github.com/cpmech/clusterdyn/sensitivity"
	"github.com/cpmech/clusterdyn/store"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	if err := application().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "gpies",
		Usage: "cluster-dynamics point-defect evolution simulator",
		Commands: []*cli.Command{
			runCommand(),
			sweepCommand(),
			serveCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "advance a simulation from a YAML configuration file and export the result",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Required: true, Usage: "path to a YAML configuration file"},
			&cli.StringFlag{Name: "csv", Usage: "write the final snapshot history to a CSV file"},
			&cli.StringFlag{Name: "xlsx", Usage: "write the final snapshot history to an Excel workbook"},
			&cli.StringFlag{Name: "report", Usage: "write a markdown run report to this path"},
			&cli.StringFlag{Name: "dsn", EnvVars: []string{"GPIES_DSN"}, Usage: "PostgreSQL DSN for persisting the run history"},
		},
		Action: func(c *cli.Context) error {
			return runAction(c)
		},
	}
}

func runAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}

	history := []engine.Snapshot{}
	for t := 0.0; t < cfg.SimulationTime; t += cfg.SampleInterval {
		snap, err := e.Advance(cfg.SampleInterval)
		if err != nil {
			return err
		}
		history = append(history, snap)
	}
	final := history[len(history)-1]

	if path := c.String("csv"); path != "" {
		if err := export.CSV(path, history); err != nil {
			return err
		}
	}
	if path := c.String("xlsx"); path != "" {
		if err := export.Excel(path, history); err != nil {
			return err
		}
	}
	if path := c.String("report"); path != "" {
		md := report.Markdown(e.Material(), e.Reactor(), cfg, final)
		if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
			return fmt.Errorf("cannot write report file %q: %w", path, err)
		}
	}
	if dsn := c.String("dsn"); dsn != "" {
		if err := persistRun(dsn, e, cfg, history); err != nil {
			return err
		}
	}

	fmt.Printf("run complete: t=%g dpa=%g dislocation_density=%g\n", final.Time, final.Dpa, final.DislocationDensity)
	return nil
}

func persistRun(dsn string, e *engine.Engine, cfg engine.Config, history []engine.Snapshot) error {
	s, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer s.Close()

	matID, err := s.SaveMaterial(e.Material())
	if err != nil {
		return err
	}
	rxrID, err := s.SaveReactor(e.Reactor())
	if err != nil {
		return err
	}
	runID, err := s.StartRun(matID, rxrID)
	if err != nil {
		return err
	}
	for seq, snap := range history {
		if err := s.AppendSnapshot(runID, seq, snap); err != nil {
			return err
		}
	}
	fmt.Printf("persisted run %s\n", runID)
	return nil
}

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "sweep one material/reactor parameter across N concurrent runs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Required: true, Usage: "path to a YAML configuration file"},
			&cli.StringFlag{Name: "variable", Required: true, Usage: "i_migration, v_migration, flux, or temperature_kelvin"},
			&cli.Float64Flag{Name: "delta", Required: true, Usage: "step between consecutive sweep points"},
			&cli.IntFlag{Name: "runs", Value: 8, Usage: "number of sweep points"},
			&cli.Float64Flag{Name: "dt", Required: true, Usage: "advance duration per run"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			result, err := sensitivity.Sweep(cfg, sensitivity.Variable(c.String("variable")), c.Float64("delta"), c.Int("runs"), c.Float64("dt"))
			if err != nil {
				return err
			}
			fmt.Printf("sweep complete: mean dislocation density=%g stddev=%g across %d runs\n", result.Mean, result.StdDev, len(result.Runs))
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve a read-only HTTP query API over persisted run history",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", EnvVars: []string{"GPIES_DSN"}, Required: true, Usage: "PostgreSQL DSN"},
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
		},
		Action: func(c *cli.Context) error {
			s, err := store.Open(c.String("dsn"))
			if err != nil {
				return err
			}
			defer s.Close()
			api := httpapi.New(s)
			log.Printf("gpies query API listening on %s", c.String("addr"))
			return http.ListenAndServe(c.String("addr"), api.Router())
		},
	}
}
