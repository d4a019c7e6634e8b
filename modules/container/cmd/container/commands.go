package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/your-org/modulecontainer/modules/container"
	"github.com/your-org/modulecontainer/modules/container/internal/config"
	"github.com/your-org/modulecontainer/modules/container/internal/logging"
	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

// cli holds flag values and the logger shared by the subcommands
type cli struct {
	out        io.Writer
	configPath string
	verbose    bool
	format     string
	repeat     int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:   "container",
		Short: "Invoke capability overrides through their capability types",
		Long: `container builds override providers for capabilities A and B and calls
each operation through the capability interface, printing one diagnostic
line per call.

Run without arguments to execute the configured steps (default: a b).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run [steps...]",
		Short: "Run a sequence of capability operations",
		Long: `Each step is a capability, optionally followed by a provider:

  a             ClassAContainer (override of methodA)
  b             ClassBContainer (override of methodB)
  a:inherited   provider that keeps the base methodA
  b:inherited   provider that keeps the base methodB

Example:
  container run a b a --repeat 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}
	runCmd.Flags().StringVar(&c.format, "format", "", "output format: text or json")
	runCmd.Flags().IntVar(&c.repeat, "repeat", 0, "run the steps this many times")

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "List registered providers per capability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.providers()
		},
	}

	rootCmd.AddCommand(runCmd, providersCmd)
	return rootCmd
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, c.verbose)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	cfg := *c.cfg
	if len(args) > 0 {
		cfg.Steps = args
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = c.format
	}
	if cmd.Flags().Changed("repeat") {
		cfg.Repeat = c.repeat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	steps, err := container.ParseSteps(cfg.Steps)
	if err != nil {
		return err
	}

	opts := []container.Option{container.WithLogger(c.logger)}
	if cfg.Format == config.FormatText {
		opts = append(opts, container.WithEmitter(diag.NewWriter(c.out, c.logger)))
	}
	inv := container.NewInvoker(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var all []diag.Signal
	for r := 0; r < cfg.Repeat; r++ {
		signals, err := inv.Invoke(ctx, steps)
		all = append(all, signals...)
		if err != nil {
			c.logger.Error("invoke failed", zap.Int("round", r), zap.Error(err))
			return err
		}
	}

	c.logger.Info("run complete",
		zap.Int("steps", len(steps)),
		zap.Int("repeat", cfg.Repeat),
		zap.Int("signals", len(all)))

	if cfg.Format == config.FormatJSON {
		return diag.NewReport(all).WriteJSON(c.out)
	}
	return nil
}

func (c *cli) providers() error {
	regs := container.DefaultRegistries()

	for _, line := range []struct {
		capability string
		names      []string
	}{
		{regs.A.Capability(), regs.A.List()},
		{regs.B.Capability(), regs.B.List()},
	} {
		for _, name := range line.names {
			if _, err := fmt.Fprintf(c.out, "%s:%s\n", line.capability, name); err != nil {
				return err
			}
		}
	}
	return nil
}
