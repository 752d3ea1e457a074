package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linearkit/sorting"
)

// parseValues converts positional arguments to integers.
// Negative values must follow a `--` separator so cobra does not read them
// as flags.
func parseValues(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", s)
		}
		vals = append(vals, v)
	}

	return vals, nil
}

// runJob executes j and prints its result on the command's stdout.
func runJob(cmd *cobra.Command, opts *RootOptions, j Job) error {
	out, err := j.Execute(opts.Logger())
	if err != nil {
		opts.Logger().Debug("job failed", zap.String("op", j.Op), zap.Error(err))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	var algo string
	names := make([]string, 0, len(sorting.Algorithms()))
	for _, alg := range sorting.Algorithms() {
		names = append(names, alg.String())
	}

	cmd := &cobra.Command{
		Use:   "sort [flags] <values...>",
		Short: "Sort integers with the chosen algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseValues(args)
			if err != nil {
				return err
			}
			return runJob(cmd, rootOpts, Job{Op: "sort", Algo: algo, Values: vals})
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "merge", "algorithm ("+strings.Join(names, "|")+")")

	return cmd
}

// NewStackCommand creates the stack command.
func NewStackCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stack <nge|pge|nse|pse|span|rect> <values...>",
		Short: "Run a monotonic-stack query",
		Long: `Run a monotonic-stack query over the values:

  nge   next greater element (-1 when none)
  pge   previous greater element
  nse   next smaller element
  pse   previous smaller element
  span  stock span
  rect  largest rectangle in the histogram`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"nge", "pge", "nse", "pse", "span", "rect"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "nge", "pge", "nse", "pse", "span", "rect":
			default:
				return fmt.Errorf("stack query %q: %w", args[0], ErrUnknownOp)
			}
			vals, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			return runJob(cmd, rootOpts, Job{Op: args[0], Values: vals})
		},
	}
}

// NewChainCommand creates the chain command.
func NewChainCommand(rootOpts *RootOptions) *cobra.Command {
	var n, entry int

	cmd := &cobra.Command{
		Use:   "chain <reverse|middle|segregate|dedupe|nth|cycle> [flags] <values...>",
		Short: "Build a chain from the values and run a chain operation",
		Long: `Build a singly chain from the values and run one operation on it:

  reverse    reverse in place
  middle     middle value (upper middle on even lengths)
  segregate  even values first, then odd, order kept
  dedupe     drop repeats from ascending values
  nth        n-th value from the end (--n)
  cycle      link the tail to the --entry-th node, then detect and repair`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"reverse", "middle", "segregate", "dedupe", "nth", "cycle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "reverse", "middle", "segregate", "dedupe", "nth", "cycle":
			default:
				return fmt.Errorf("chain op %q: %w", args[0], ErrUnknownOp)
			}
			vals, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			return runJob(cmd, rootOpts, Job{Op: args[0], Values: vals, N: n, Entry: entry})
		},
	}
	cmd.Flags().IntVar(&n, "n", 1, "position from the end for nth")
	cmd.Flags().IntVarP(&entry, "entry", "e", 0, "1-based cycle entry for cycle (0 = no cycle)")

	return cmd
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	var left, right []int

	cmd := &cobra.Command{
		Use:   "merge --left 1,3,5 --right 2,4",
		Short: "Merge two ascending chains into one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, rootOpts, Job{Op: "merge", Left: left, Right: right})
		},
	}
	cmd.Flags().IntSliceVarP(&left, "left", "l", nil, "ascending values of the left chain")
	cmd.Flags().IntSliceVarP(&right, "right", "r", nil, "ascending values of the right chain")

	return cmd
}

// NewBalancedCommand creates the balanced command.
func NewBalancedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balanced <text>",
		Short: "Report whether the brackets in text are balanced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, rootOpts, Job{Op: "balanced", Text: args[0]})
		},
	}
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run --file <jobs.yaml>",
		Short: "Execute a YAML batch of jobs",
		Long: `Execute every job of a YAML batch file in order, printing one
"op: result" line per job. The first failing job stops the batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger()
			jobs, err := LoadJobs(file)
			if err != nil {
				return err
			}
			log.Info("loaded jobs", zap.String("file", file), zap.Int("count", len(jobs)))

			for i, j := range jobs {
				out, err := j.Execute(log)
				if err != nil {
					return fmt.Errorf("job %d (%s): %w", i+1, j.Op, err)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", j.Op, out); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the jobs file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
