package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"tacticalalloc/cmd"
	"tacticalalloc/internal/app"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/renderer"
	"tacticalalloc/internal/util"

	"github.com/spf13/cobra"
)

type flags struct {
	resultDir string
	capital   string
	noEmail   bool
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "rebalance",
		Short:         "Split the portfolio across the ODM, VAA and LAA strategies and record it in the ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runRebalance(c, f, false)
		},
	}
	root.PersistentFlags().StringVar(&f.resultDir, "result-dir", "", "directory holding the ledger spreadsheets (default $TAA_RESULT_DIR or ./result)")
	root.PersistentFlags().StringVar(&f.capital, "capital", "", "initial capital for a first run, skips the prompt")
	root.PersistentFlags().BoolVar(&f.noEmail, "no-email", false, "do not email the report")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Compute allocations and write them to today's ledger file",
			RunE: func(c *cobra.Command, args []string) error {
				return runRebalance(c, f, false)
			},
		},
		&cobra.Command{
			Use:   "preview",
			Short: "Compute allocations without writing the ledger",
			RunE: func(c *cobra.Command, args []string) error {
				return runRebalance(c, f, true)
			},
		},
		&cobra.Command{
			Use:   "holdings",
			Short: "Show the latest holdings valued at current prices",
			RunE: func(c *cobra.Command, args []string) error {
				return runHoldings(c, f)
			},
		},
	)

	return root
}

func initialize(c *cobra.Command, f *flags) (context.Context, *cmd.Dependencies, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if f.resultDir != "" {
		cfg.ResultDir = f.resultDir
	}

	lg := logger.New()
	ctx := logger.NewContext(c.Context(), lg)

	deps, err := cmd.InitializeDependencies(ctx, cfg, lg)
	if err != nil {
		return nil, nil, err
	}
	deps.Rebalancer.PromptCapital = promptCapital(c.InOrStdin(), c.OutOrStdout())

	return ctx, deps, nil
}

func printMarkdown(out io.Writer, markdown string) {
	rendered, err := renderer.RenderTerminal(markdown)
	if err != nil {
		rendered = markdown
	}
	fmt.Fprint(out, rendered)
}

func runRebalance(c *cobra.Command, f *flags, dryRun bool) error {
	ctx, deps, err := initialize(c, f)
	if err != nil {
		return err
	}

	in := app.RebalanceInput{
		DryRun:    dryRun,
		SkipEmail: f.noEmail,
	}
	if f.capital != "" {
		capital, err := parseAmount(f.capital)
		if err != nil {
			return fmt.Errorf("invalid --capital: %w", err)
		}
		in.InitialCapital = &capital
	}

	report, err := deps.Rebalancer.Rebalance(ctx, in)
	if report != nil {
		printMarkdown(c.OutOrStdout(), renderer.RebalanceMarkdown(report))
	}
	if err != nil {
		return err
	}

	if report.LedgerFile != "" {
		fmt.Fprintf(c.OutOrStdout(), "All data has been saved to %s\n", report.LedgerFile)
	}
	return nil
}

func runHoldings(c *cobra.Command, f *flags) error {
	ctx, deps, err := initialize(c, f)
	if err != nil {
		return err
	}

	snapshot, err := deps.Rebalancer.CurrentHoldings(ctx)
	if err != nil {
		return err
	}
	printMarkdown(c.OutOrStdout(), renderer.HoldingsMarkdown(snapshot))
	return nil
}

func main() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
