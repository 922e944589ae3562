package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idlerice/cannon/sim"
)

var (
	logLevel string        // Log verbosity level
	workers  int           // Number of concurrent client workers
	seed     int64         // Seed for the strategy and latency model RNGs
	duration time.Duration // Optional bound on the run (0 = until signalled)
)

var errUsage = errors.New("usage: cannon (random|affinity)")

// rootCmd is the base command for the CLI. Cobra's own usage and error
// output are silenced so a bad invocation prints exactly the usage line.
var rootCmd = &cobra.Command{
	Use:           "cannon (random|affinity)",
	Short:         "Distributed-systems latency modelling tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		return nil
	},
	RunE: run,
}

// run wires the simulation together and blocks in the reporter loop until
// the process is signalled or the optional duration elapses.
func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	if workers <= 0 {
		logrus.Fatalf("Invalid worker count: %d", workers)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	sink := sim.NewMetricsSink()
	servers := sim.DefaultTopology(sink, seed)
	strategy := sim.NewStrategy(args[0], servers, seed)

	gen := sim.NewWorkloadGenerator(strategy, workers)
	gen.Start(ctx)

	sim.NewReporter(sink, time.Second).Run(ctx)
	gen.Wait()
	sink.Summary()
	return nil
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// init sets up CLI flags
func init() {
	rootCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().IntVar(&workers, "workers", 8, "Number of concurrent client workers")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the strategy and latency model RNGs")
	rootCmd.Flags().DurationVar(&duration, "duration", 0, "Run for a fixed duration then exit (0 runs until interrupted)")
}
