// Package cli implements the linearkit command tree. Every subcommand turns
// its arguments into a Job and prints the Job's result, so `run` over a YAML
// batch file and the individual subcommands share one execution path.
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RootOptions holds global flags and the logger built from them.
type RootOptions struct {
	Verbose bool
	LogFile string // optional rotating log file, in addition to stderr

	logger *zap.Logger
	file   *lumberjack.Logger
}

// Logger returns the command logger, or a no-op logger before the root
// command has run its pre-run hook.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCommand creates the root command for the linearkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "linearkit",
		Short: "linearkit - algorithms over linear data structures",
		Long: `Run the chain, sorting and monotonic-stack algorithms of linearkit
from the command line, one operation at a time or as a YAML batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			sinks := []io.Writer{cmd.ErrOrStderr()}
			if opts.LogFile != "" {
				opts.file = newLogFile(opts.LogFile)
				sinks = append(sinks, opts.file)
			}
			opts.logger = newLogger(opts.Verbose, sinks...)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
			if opts.file != nil {
				_ = opts.file.Close()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "also write logs to this file (rotated)")

	// Subcommands
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewStackCommand(opts))
	cmd.AddCommand(NewChainCommand(opts))
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewBalancedCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// newLogger builds a JSON logger from the production config that writes to
// every sink, at debug level when verbose is set and info level otherwise.
func newLogger(verbose bool, sinks ...io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	enc := zapcore.NewJSONEncoder(cfg.EncoderConfig)

	cores := make([]zapcore.Core, 0, len(sinks))
	for _, w := range sinks {
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(w), cfg.Level))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// newLogFile returns a size-rotated log file: 1 MB per file, two backups,
// thirty days of retention.
func newLogFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
}
