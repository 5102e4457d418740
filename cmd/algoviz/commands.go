package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/algoviz/internal/automation"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

// generateCmd builds a command that generates a trace for its first
// argument before calling run.
func generateCmd(use, short string, run func(cmd *cobra.Command, seq *step.Sequence) error) (*cobra.Command, *inputFlags) {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := in.resolve(cmd.Flags(), args[0])
			if err != nil {
				return err
			}
			seq, err := cli.registry.Generate(args[0], params)
			if err != nil {
				return err
			}
			return run(cmd, seq)
		},
	}
	addInputFlags(cmd, in)
	return cmd, in
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFAMILY\tTITLE\tPRESETS")
			for _, e := range cli.registry.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Family, e.Title,
					strings.Join(config.ListPresets(e.Name), ","))
			}
			return w.Flush()
		},
	}
}

func runCmd() *cobra.Command {
	var render bool
	cmd, _ := generateCmd("run [algorithm]", "print the step trace", func(cmd *cobra.Command, seq *step.Sequence) error {
		out := cmd.OutOrStdout()
		for i, s := range seq.Steps() {
			h := s.Head()
			if render {
				fmt.Fprintf(out, "── step %d/%d ──\n%s\n\n", i+1, seq.Len(), viz.Render(s, cli.cfg.Width))
				continue
			}
			c := h.Counters
			fmt.Fprintf(out, "%4d  %-10s %s  [cmp=%d swp=%d wr=%d calls=%d]\n",
				i, h.Kind, h.Message, c.Comparisons, c.Swaps, c.Writes, c.CallCount)
		}
		return nil
	})
	cmd.Flags().BoolVar(&render, "render", false, "render every step instead of one line each")
	return cmd
}

func playCmd() *cobra.Command {
	var plain bool
	cmd, _ := generateCmd("play [algorithm]", "replay a trace with autoplay", func(cmd *cobra.Command, seq *step.Sequence) error {
		if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
			return viz.RunPlayer(viz.NewPlayerModel(seq, "", cli.cfg.Speed(), true))
		}
		return playPlain(cmd.Context(), cmd.OutOrStdout(), seq)
	})
	cmd.Flags().BoolVar(&plain, "plain", false, "print frames instead of the interactive player")
	return cmd
}

// playPlain drives an Autoplay loop until the trace ends or the user
// interrupts.
func playPlain(parent context.Context, out io.Writer, seq *step.Sequence) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	r := tui.NewLiveRenderer(out, seq, tui.WithWidth(cli.cfg.Width), tui.WithClear(isTTY))
	r.Start()
	defer r.Stop()

	player := playback.New(playback.WithSpeed(cli.cfg.Speed()))
	ap := playback.NewAutoplay(player, func(f playback.Frame) {
		if f.Len == 0 {
			return
		}
		r.Render(f)
		if f.AtEnd && f.State != playback.Playing {
			cancel()
		}
	}, cli.logger)

	errc := make(chan error, 1)
	go func() { errc <- ap.Run(ctx) }()

	// A one-step trace ends on load, so the loop may already be gone.
	for _, c := range []playback.Command{
		{Type: playback.CommandLoad, Sequence: seq},
		{Type: playback.CommandPlay},
	} {
		if err := ap.Send(ctx, c); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, playback.ErrStopped) {
				break
			}
			return err
		}
	}

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func exportCmd() *cobra.Command {
	var format, out string
	var at int
	cmd, _ := generateCmd("export [algorithm]", "export a trace as json, csv or svg", func(cmd *cobra.Command, seq *step.Sequence) error {
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		idx := at
		if idx < 0 {
			idx = seq.Len() - 1
		}
		if out == "" || out == "-" {
			return export.Write(cmd.OutOrStdout(), f, seq, idx)
		}
		if err := export.WriteFile(out, f, seq, idx); err != nil {
			return err
		}
		cli.logger.Info("exported", "algorithm", seq.Algorithm(), "format", f, "path", out)
		return nil
	})
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv or svg")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&at, "at", -1, "step to draw for svg (default last)")
	return cmd
}

func plotCmd() *cobra.Command {
	var counter, svgOut string
	cmd, _ := generateCmd("plot [algorithm]", "chart counters over the trace", func(cmd *cobra.Command, seq *step.Sequence) error {
		names := []string{counter}
		if counter == "all" {
			names = []string{"comparisons", "swaps", "writes", "calls"}
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "algorithm: %s\nsteps: %d\n\n", seq.Algorithm(), seq.Len())

		for _, name := range names {
			pick, ok := metrics.CounterPickers[name]
			if !ok {
				return fmt.Errorf("unknown counter %q", name)
			}
			data := metrics.Series(seq, pick)
			if len(data) < 2 {
				fmt.Fprintf(out, "%s: not enough steps to plot\n", name)
				continue
			}
			if svgOut != "" {
				path := svgOut
				if len(names) > 1 {
					path = strings.TrimSuffix(svgOut, ".svg") + "-" + name + ".svg"
				}
				svg := export.SeriesToSVG(data, 800, 300, string(viz.CurrentTheme.Primary))
				if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
					return err
				}
				continue
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(min(len(data), 80)),
				asciigraph.Caption(name),
			)
			fmt.Fprintln(out, graph)
			fmt.Fprintln(out)
		}
		return nil
	})
	cmd.Flags().StringVar(&counter, "counter", "comparisons", "comparisons, swaps, writes, calls or all")
	cmd.Flags().StringVar(&svgOut, "svg", "", "write the chart as svg instead")
	return cmd
}

func statsCmd() *cobra.Command {
	cmd, _ := generateCmd("stats [algorithm]", "summarise a trace", func(cmd *cobra.Command, seq *step.Sequence) error {
		kinds := metrics.Summarize(seq)
		ms := metrics.DefaultMetrics()
		for _, k := range kinds.KindNames() {
			ms = append(ms, metrics.NewKindShare(k))
		}
		sum := metrics.Summarize(seq, ms...)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "algorithm\t%s\n", sum.Algorithm)
		fmt.Fprintf(w, "family\t%s\n", sum.Family)
		fmt.Fprintf(w, "steps\t%d\n", sum.Steps)
		fmt.Fprintf(w, "result\t%s: %s\n", sum.Terminal, sum.Message)
		fmt.Fprintf(w, "comparisons\t%d\n", sum.Final.Comparisons)
		fmt.Fprintf(w, "swaps\t%d\n", sum.Final.Swaps)
		fmt.Fprintf(w, "writes\t%d\n", sum.Final.Writes)
		fmt.Fprintf(w, "calls\t%d\n", sum.Final.CallCount)
		fmt.Fprintf(w, "work per step\t%.2f\n", sum.Values["work_per_step"])
		fmt.Fprintln(w)
		fmt.Fprintln(w, "KIND\tCOUNT\tSHARE")
		for _, k := range sum.KindNames() {
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", k, sum.Kinds[k], 100*sum.Values[string(k)+"_share"])
		}
		return w.Flush()
	})
	return cmd
}

func sweepCmd() *cobra.Command {
	var sweep automation.Sweep
	cmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure counters over growing random inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep.Algorithm = args[0]
			results, err := automation.RunSweep(cmd.Context(), sweep, cli.registry, cli.logger)
			if err != nil {
				return err
			}
			return printSweep(cmd.OutOrStdout(), sweep.Algorithm, results)
		},
	}
	cmd.Flags().IntVar(&sweep.MinSize, "min", 2, "smallest input size")
	cmd.Flags().IntVar(&sweep.MaxSize, "max", 32, "largest input size")
	cmd.Flags().IntVar(&sweep.NumSteps, "steps", 6, "number of sizes")
	cmd.Flags().IntVar(&sweep.Trials, "trials", 3, "random inputs per size")
	cmd.Flags().Uint64Var(&sweep.Seed, "seed", 1, "base seed")
	return cmd
}

func printSweep(out io.Writer, algorithm string, results []automation.SweepResult) error {
	fmt.Fprintf(out, "sweep: %s\n\n", algorithm)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tTRIALS\tCMP MIN\tCMP MAX\tCMP MEAN\tSWAPS\tWRITES\tSTEPS")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.Size, r.Trials, r.MinComparisons, r.MaxComparisons,
			r.MeanComparisons, r.MeanSwaps, r.MeanWrites, r.MeanSteps)
	}
	return w.Flush()
}

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [algorithm]",
		Short: "describe an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cli.registry.Get(args[0])
			if err != nil {
				return err
			}
			md := fmt.Sprintf("# %s\n\n%s\n\n## Presets\n\n", e.Title, e.Notes)
			for _, name := range config.ListPresets(e.Name) {
				p, _ := config.GetPreset(e.Name, name)
				md += fmt.Sprintf("- `%s`: %s\n", name, p.Description)
			}

			style := glamour.WithAutoStyle()
			if noColor {
				style = glamour.WithStandardStyle("notty")
			}
			r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(cli.cfg.Width+20))
			if err != nil {
				return err
			}
			rendered, err := r.Render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, name := range presets {
				p, _ := config.GetPreset(args[0], name)
				fmt.Fprintf(out, "  %-12s %s\n", name, p.Description)
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "check a config file's params against its algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cli.registry.Validate(cfg.Algorithm, cfg.Params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: params valid for %s\n", args[0], cfg.Algorithm)
			return nil
		},
	}
}

func scriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script [scenario-file]",
		Short: "run a yaml scenario of generations and sweeps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sc.Name != "" {
				fmt.Fprintf(out, "scenario: %s\n", sc.Name)
			}

			results, err := automation.RunScenario(cmd.Context(), sc, cli.registry, cli.logger)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCMP\tSWAPS\tWRITES\tCALLS\tRESULT")
			for _, r := range results {
				s := r.Summary
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n", s.Algorithm, s.Steps,
					s.Final.Comparisons, s.Final.Swaps, s.Final.Writes, s.Final.CallCount, s.Terminal)
			}
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}
			if err != nil {
				return err
			}

			for _, sweep := range sc.Sweeps {
				res, err := automation.RunSweep(cmd.Context(), sweep, cli.registry, cli.logger)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				if err := printSweep(out, sweep.Algorithm, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "pick and replay algorithms interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunMenu(cli.registry, cli.cfg.Speed())
		},
	}
}
