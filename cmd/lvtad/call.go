// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtad/config"
	"github.com/katalvlaran/lvtad/fanout"
	"github.com/katalvlaran/lvtad/format"
	"github.com/katalvlaran/lvtad/ingest"
	"github.com/katalvlaran/lvtad/tad"
)

func newCallCmd() *cobra.Command {
	var (
		configPath string
		chroms     []string
	)
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "call [flags] <matrix>...",
		Short: "Call TADs on one contact matrix per chromosome",
		Long: `Each matrix is a sparse (start_i start_j count), full (n×n) or
bed-augmented (chrom start end counts…) table, optionally gzip-compressed.
The chromosome is taken from --chrom, the bed column or the file name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyFlags(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if len(chroms) > 0 && len(chroms) != len(args) {
				return fmt.Errorf("--chrom lists %d names for %d matrices", len(chroms), len(args))
			}

			log, err := cfg.Log.Logger()
			if err != nil {
				return fmt.Errorf("cannot build logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			return runCall(cmd, cfg, args, chroms, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.StringSliceVar(&chroms, "chrom", nil, "chromosome name per matrix, in argument order")
	f.Int("levels", def.Levels, "number of hierarchy levels")
	f.Int("min-size", def.MinSize, "smallest domain, in bins")
	f.Int("eigenvalues", def.Eigenvalues, "eigenvectors used for the embedding")
	f.Int("window-size", def.WindowSize, "window width in bins (0 = 2 Mb worth of bins)")
	f.Float64("gap-threshold", def.GapThreshold, "largest fraction of zeros a bin may hold inside a window")
	f.String("policy", def.Policy, "boundary policy: zscore or silhouette")
	f.Bool("quality-filter", def.QualityFilter, "drop level-1 silhouette domains scoring 0.15 or less")
	f.Int64("resolution", def.Resolution, "bin width in bp (0 = infer from coordinates)")
	f.Int("workers", def.Workers, "chromosomes processed concurrently (0 = GOMAXPROCS)")
	f.String("format", def.Output.Format, "output format: bed or bedpe")
	f.String("out", def.Output.Path, "output file (default stdout)")
	f.String("log-level", def.Log.Level, "log level: debug, info, warn or error")
	f.String("log-format", def.Log.Format, "log format: console or json")

	return cmd
}

// applyFlags copies every flag set on the command line into cfg.
func applyFlags(f *pflag.FlagSet, cfg *config.Config) {
	if f.Changed("levels") {
		cfg.Levels, _ = f.GetInt("levels")
	}
	if f.Changed("min-size") {
		cfg.MinSize, _ = f.GetInt("min-size")
	}
	if f.Changed("eigenvalues") {
		cfg.Eigenvalues, _ = f.GetInt("eigenvalues")
	}
	if f.Changed("window-size") {
		cfg.WindowSize, _ = f.GetInt("window-size")
	}
	if f.Changed("gap-threshold") {
		cfg.GapThreshold, _ = f.GetFloat64("gap-threshold")
	}
	if f.Changed("policy") {
		cfg.Policy, _ = f.GetString("policy")
	}
	if f.Changed("quality-filter") {
		cfg.QualityFilter, _ = f.GetBool("quality-filter")
	}
	if f.Changed("resolution") {
		cfg.Resolution, _ = f.GetInt64("resolution")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("format") {
		cfg.Output.Format, _ = f.GetString("format")
	}
	if f.Changed("out") {
		cfg.Output.Path, _ = f.GetString("out")
	}
	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.Log.Format, _ = f.GetString("log-format")
	}
}

func runCall(cmd *cobra.Command, cfg *config.Config, paths, chroms []string, log *zap.Logger) error {
	jobs := make([]fanout.Job, len(paths))
	for i, path := range paths {
		m, err := ingest.ReadFile(path, ingest.WithResolution(cfg.Resolution))
		if err != nil {
			return err
		}
		chrom := m.Chrom
		switch {
		case len(chroms) > 0:
			chrom = chroms[i]
		case chrom == "":
			chrom = stem(path)
		}
		p, err := cfg.Params(chrom)
		if err != nil {
			return err
		}
		log.Info("matrix loaded",
			zap.String("path", path), zap.String("chrom", chrom), zap.Stringer("shape", m.Shape),
			zap.Int("bins", m.Contacts.Size()), zap.Int64("resolution", m.Contacts.Resolution()))
		jobs[i] = fanout.Job{Matrix: m.Contacts, Params: p, Levels: cfg.Levels}
	}

	results, err := fanout.Run(cmd.Context(), jobs, fanout.WithWorkers(cfg.Workers), fanout.WithLogger(log))
	if err != nil {
		return err
	}
	hs := make([]tad.Hierarchy, len(results))
	for i, r := range results {
		hs[i] = r.Hierarchy
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		file, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", cfg.Output.Path, err)
		}
		defer file.Close()
		out = file
	}
	if err := write(out, cfg.Output.Format, hs); err != nil {
		return err
	}
	summarize(cmd.ErrOrStderr(), hs)

	return nil
}

func write(w io.Writer, kind string, hs []tad.Hierarchy) error {
	if kind == "bedpe" {
		return format.WriteBEDPE(w, hs...)
	}

	return format.WriteBED(w, hs...)
}

// summarize prints one line per chromosome and level.
func summarize(w io.Writer, hs []tad.Hierarchy) {
	for _, h := range hs {
		for k := 1; k <= h.Depth(); k++ {
			level := h.Level(k)
			var span int64
			for _, d := range level {
				span += d.End - d.Start
			}
			mean := 0.0
			if len(level) > 0 {
				mean = float64(span) / float64(len(level))
			}
			fmt.Fprintf(w, "%s level %d: %s domains, mean %s, covering %s\n",
				h.Chrom, k, humanize.Comma(int64(len(level))),
				humanize.SIWithDigits(mean, 1, "b"), humanize.SIWithDigits(float64(span), 1, "b"))
		}
	}
}

// stem returns the file name without directories, a .gz suffix and one extension.
func stem(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")

	return strings.TrimSuffix(base, filepath.Ext(base))
}
