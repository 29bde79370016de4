package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/blastsim/internal/analysis"
	"github.com/san-kum/blastsim/internal/automation"
	"github.com/san-kum/blastsim/internal/config"
	"github.com/san-kum/blastsim/internal/export"
	"github.com/san-kum/blastsim/internal/logging"
	"github.com/san-kum/blastsim/internal/sim"
	"github.com/san-kum/blastsim/internal/tui"
	"github.com/san-kum/blastsim/internal/viz"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	logLevel   string
	logJSON    bool
	preset     string
	force      int
	fps        int
	theme      string
	format     string
	workers    int
	color      bool
	autoplay   bool
	height     int
	plain      bool
	// random batch
	random     int
	length     int
	density    float64
	seed       int64

	log zerolog.Logger
}

// main builds the blastsim command tree and exits with status 1 when a
// command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "blastsim",
		Short:        "one-dimensional explosion simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := opts.logLevel
			if opts.configFile != "" && !cmd.Flags().Changed("log-level") {
				cfg, err := config.Load(opts.configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				level = cfg.LogLevel
			}
			opts.log = logging.New(cmd.ErrOrStderr(), level, opts.logJSON)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	chamberFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&opts.force, "force", config.DefaultForce, "cells each piece of shrapnel moves per step")
		cmd.Flags().StringVar(&opts.preset, "preset", "", "use preset chamber")
	}

	runCmd := &cobra.Command{
		Use:   "run [chamber]",
		Short: "print the animation, one frame per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimation(cmd, args, opts)
		},
	}
	chamberFlags(runCmd)
	runCmd.Flags().BoolVar(&opts.color, "color", false, "color frames with the theme")
	runCmd.Flags().StringVar(&opts.theme, "theme", config.DefaultTheme, "color theme")

	liveCmd := &cobra.Command{
		Use:   "live [chamber]",
		Short: "play the animation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args, opts)
		},
	}
	chamberFlags(liveCmd)
	liveCmd.Flags().IntVar(&opts.fps, "fps", config.DefaultFPS, "frames per second")
	liveCmd.Flags().StringVar(&opts.theme, "theme", config.DefaultTheme, "color theme")
	liveCmd.Flags().BoolVar(&opts.autoplay, "autoplay", true, "start playing immediately")
	liveCmd.Flags().BoolVar(&opts.plain, "plain", false, "redraw with plain ANSI escapes while simulating")

	plotCmd := &cobra.Command{
		Use:   "plot [chamber]",
		Short: "plot shrapnel counts per step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotAnimation(cmd, args, opts)
		},
	}
	chamberFlags(plotCmd)
	plotCmd.Flags().IntVar(&opts.height, "height", 10, "plot height")

	statsCmd := &cobra.Command{
		Use:   "stats [chamber]",
		Short: "summarize the animation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return statsAnimation(cmd, args, opts)
		},
	}
	chamberFlags(statsCmd)

	exportCmd := &cobra.Command{
		Use:   "export [chamber]",
		Short: "write the animation to stdout as text, json, csv or svg",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportAnimation(cmd, args, opts)
		},
	}
	chamberFlags(exportCmd)
	exportCmd.Flags().StringVar(&opts.format, "format", config.DefaultFormat, fmt.Sprintf("output format %v", export.Formats()))

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "simulate every run of a scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}
	batchCmd.Flags().IntVar(&opts.workers, "workers", config.DefaultWorkers, "concurrent simulations")
	batchCmd.Flags().IntVar(&opts.random, "random", 0, "generate this many random chambers instead of reading a file")
	batchCmd.Flags().IntVar(&opts.length, "length", 20, "random chamber length")
	batchCmd.Flags().Float64Var(&opts.density, "density", 0.2, "random bomb probability per cell")
	batchCmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	batchCmd.Flags().IntVar(&opts.force, "force", config.DefaultForce, "force for random chambers")

	sweepCmd := &cobra.Command{
		Use:   "sweep [chamber]",
		Short: "compare every force on the same chamber",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweepForces(cmd, args, opts)
		},
	}
	sweepCmd.Flags().StringVar(&opts.preset, "preset", "", "use preset chamber")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFORCE\tCHAMBER")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, p.Force, p.Chamber)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", name, viz.Colorize("B.<>X", viz.GetTheme(name)))
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, statsCmd, exportCmd, batchCmd, sweepCmd, presetsCmd, themesCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, changed flags and the
// positional chamber, in increasing priority.
func resolveConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		p, ok := config.GetPreset(opts.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	// Load config file if specified (overrides preset)
	if opts.configFile != "" {
		if err := config.LoadInto(opts.configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Force = opts.force
	}
	if flags.Changed("fps") {
		cfg.FPS = opts.fps
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if len(args) > 0 {
		cfg.Chamber = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func simulate(cmd *cobra.Command, args []string, opts *options, observers ...sim.Observer) (*config.Config, *sim.Result, error) {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return nil, nil, err
	}

	s := sim.New()
	for _, o := range observers {
		s.AddObserver(o)
	}
	if opts.log.GetLevel() <= zerolog.DebugLevel {
		s.AddObserver(logging.NewStepLogger(opts.log))
	}

	opts.log.Info().Str("chamber", cfg.Chamber).Int("force", cfg.Force).Msg("simulating")
	result, err := s.Run(cfg.SimConfig())
	if err != nil {
		return nil, nil, err
	}
	opts.log.Info().Int("steps", result.Steps).Int("frames", len(result.Frames)).Msg("done")
	return cfg, result, nil
}

func runAnimation(cmd *cobra.Command, args []string, opts *options) error {
	cfg, result, err := simulate(cmd, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.color {
		return export.Text(out, export.Animation{Chamber: cfg.Chamber, Force: cfg.Force, Frames: result.Frames})
	}
	theme := viz.GetTheme(cfg.Theme)
	for _, f := range result.Frames {
		fmt.Fprintln(out, viz.Colorize(f, theme))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string, opts *options) error {
	if opts.plain {
		return runPlainLive(cmd, args, opts)
	}

	cfg, result, err := simulate(cmd, args, opts)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s force %d", cfg.Chamber, cfg.Force)
	if opts.preset != "" {
		title = opts.preset
	}
	p := tea.NewProgram(viz.NewPlayer(title, result.Frames, cfg.FPS, cfg.Theme, opts.autoplay))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPlainLive(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	r := tui.NewLiveRenderer(cmd.OutOrStdout(), cfg.FPS)
	s := sim.New()
	s.AddObserver(r)

	r.Start(cfg.Chamber)
	defer r.Stop()
	_, err = s.Run(cfg.SimConfig())
	return err
}

func plotAnimation(cmd *cobra.Command, args []string, opts *options) error {
	rec := analysis.NewRecorder()
	cfg, result, err := simulate(cmd, args, opts, rec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Steps == 0 {
		fmt.Fprintln(out, "no shrapnel to plot")
		return nil
	}

	// Both populations start with one piece per bomb.
	bombs := float64(analysis.Frame(0, result.Frames[0]).Bombs)
	left := []float64{bombs}
	right := []float64{bombs}
	for i := range rec.Left {
		left = append(left, float64(rec.Left[i]))
		right = append(right, float64(rec.Right[i]))
	}

	graph := asciigraph.PlotMany([][]float64{left, right},
		asciigraph.Height(opts.height),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("left (cyan) / right (magenta) shrapnel, %s force %d", cfg.Chamber, cfg.Force)),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func statsAnimation(cmd *cobra.Command, args []string, opts *options) error {
	cfg, result, err := simulate(cmd, args, opts)
	if err != nil {
		return err
	}

	sum := analysis.Summarize(result.Frames)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "chamber\t%s\n", cfg.Chamber)
	fmt.Fprintf(w, "force\t%d\n", cfg.Force)
	fmt.Fprintf(w, "length\t%d\n", sum.Chamber)
	fmt.Fprintf(w, "bombs\t%d\n", sum.Bombs)
	fmt.Fprintf(w, "frames\t%d\n", sum.Frames)
	fmt.Fprintf(w, "steps\t%d\n", sum.Steps)
	fmt.Fprintf(w, "peak shrapnel\t%d\n", sum.PeakShrapnel)
	fmt.Fprintf(w, "peak overlap\t%d\n", sum.PeakOverlap)
	fmt.Fprintf(w, "first exit\t%d\n", sum.FirstExit)
	return w.Flush()
}

func exportAnimation(cmd *cobra.Command, args []string, opts *options) error {
	cfg, result, err := simulate(cmd, args, opts)
	if err != nil {
		return err
	}
	a := export.Animation{Chamber: cfg.Chamber, Force: cfg.Force, Frames: result.Frames}
	return export.Write(cmd.OutOrStdout(), cfg.Format, a)
}

func runBatch(cmd *cobra.Command, args []string, opts *options) error {
	var scenario *automation.Scenario
	switch {
	case len(args) == 1:
		s, err := automation.LoadScenario(args[0])
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		scenario = s
	case opts.random > 0:
		scenario = automation.RandomScenario(opts.random, opts.length, opts.density, opts.force, opts.seed)
	default:
		return fmt.Errorf("batch needs a scenario file or --random")
	}

	workers := opts.workers
	if !cmd.Flags().Changed("workers") && opts.configFile != "" {
		cfg, err := config.Load(opts.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		workers = cfg.Workers
	}

	opts.log.Info().Str("scenario", scenario.Name).Int("runs", len(scenario.Runs)).Int("workers", workers).Msg("running batch")
	outcomes, err := automation.RunScenario(context.Background(), scenario, workers)
	if err != nil {
		return err
	}

	writeOutcomes(cmd.OutOrStdout(), outcomes)

	if failed := automation.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(outcomes))
	}
	return nil
}

func writeOutcomes(out io.Writer, outcomes []automation.Outcome) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHAMBER\tFORCE\tSTEPS\tPEAK\tOVERLAP\tERROR")
	for _, o := range outcomes {
		cfg, _ := o.Run.Resolve()
		errText := "-"
		if o.Err != nil {
			errText = o.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			o.Run.Name,
			cfg.Chamber,
			cfg.Force,
			o.Summary.Steps,
			o.Summary.PeakShrapnel,
			o.Summary.PeakOverlap,
			errText,
		)
	}
	w.Flush()
}

func sweepForces(cmd *cobra.Command, args []string, opts *options) error {
	chamber := config.DefaultChamber
	if opts.preset != "" {
		p, ok := config.GetPreset(opts.preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
		chamber = p.Chamber
	}
	if len(args) > 0 {
		chamber = args[0]
	}

	results, err := automation.SweepForce(chamber)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "force sweep for %s\n\n", chamber)
	fmt.Fprintf(out, "%-6s  %-6s  %-10s  %-12s\n", "force", "steps", "first_exit", "peak_overlap")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for _, r := range results {
		fmt.Fprintf(out, "%-6d  %-6d  %-10d  %-12d\n", r.Force, r.Summary.Steps, r.Summary.FirstExit, r.Summary.PeakOverlap)
	}
	return nil
}
