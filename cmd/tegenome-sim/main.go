// tegenome-sim replays scripted transposable-element operation sequences
// for simulation studies. Scripts are YAML files of insert/copy/disable
// steps; the random subcommand generates them stochastically.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaslund/tegenome"
)

var (
	flagBackend  string
	flagLogLevel string

	log *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "tegenome-sim",
		Short: "Replay and generate TE genome simulation scripts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
			}
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagBackend, "backend", "ring", "genome backend: ring or array")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newRunCmd(), newRandomCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		strict     bool
		renderEach bool
	)

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a YAML operation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}

			res, err := script.Replay(flagBackend, strict, renderEach, log)
			if err != nil {
				return err
			}
			report(res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "abort on the first declined operation")
	cmd.Flags().BoolVar(&renderEach, "render-each", false, "print the genome after every step")
	return cmd
}

func newRandomCmd() *cobra.Command {
	cfg := GeneratorConfig{}
	var out string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random script and replay it",
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := Generate(cfg)
			if err != nil {
				return err
			}
			log.Info("generated script", "steps", len(script.Steps), "seed", cfg.Seed)

			if out != "" {
				if err := script.Save(out); err != nil {
					return err
				}
				log.Info("wrote script", "path", out)
			}

			res, err := script.Replay(flagBackend, false, false, log)
			if err != nil {
				return err
			}
			report(res)
			return nil
		},
	}
	cmd.Flags().Int64Var(&cfg.InitialLength, "initial-length", 1000, "starting genome length")
	cmd.Flags().IntVar(&cfg.Steps, "steps", 500, "number of operations to generate")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&cfg.MeanLength, "mean-length", 5, "mean element length (Poisson)")
	cmd.Flags().Float64Var(&cfg.InsertProb, "insert-prob", 0.3, "fraction of insert steps")
	cmd.Flags().Float64Var(&cfg.CopyProb, "copy-prob", 0.5, "fraction of copy steps")
	cmd.Flags().StringVar(&out, "out", "", "also write the generated script to this YAML file")
	return cmd
}

// report prints the replay outcome, including the segment growth the
// run caused where the backend can tell us.
func report(res *ReplayResult) {
	fmt.Printf("applied %d operations, %d declined\n", res.Applied, res.Declined)
	fmt.Printf("final length: %d\n", res.Genome.Length())
	fmt.Printf("active elements: %d\n", len(res.Genome.ActiveTEs()))

	switch g := res.Genome.(type) {
	case *tegenome.RingGenome:
		s := g.Stats()
		fmt.Printf("segments: %d (%d empty, %d active, %d disabled)\n",
			s.Segments, s.EmptySegments, s.ActiveSegments, s.DisabledSegments)
	case *tegenome.ArrayGenome:
		s := g.Stats()
		fmt.Printf("uniform runs: %d\n", s.Segments)
	}
}
