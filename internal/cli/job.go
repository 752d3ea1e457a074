package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
	"github.com/katalvlaran/linearkit/monostack"
	"github.com/katalvlaran/linearkit/sorting"
	"github.com/katalvlaran/linearkit/stack"
)

var (
	// ErrUnknownOp indicates a job whose op names no operation.
	ErrUnknownOp = errors.New("cli: unknown op")

	// ErrNotAscending indicates input that must be ascending but is not.
	ErrNotAscending = errors.New("cli: values are not ascending")
)

// Job is one operation with its inputs. Op selects the operation:
//
//	sort                          Values, Algo
//	nge, pge, nse, pse, span      Values
//	rect                          Values (histogram heights)
//	reverse, middle, segregate    Values
//	dedupe                        Values (ascending)
//	nth                           Values, N
//	cycle                         Values, Entry (1-based, 0 = no cycle)
//	merge                         Left, Right (both ascending)
//	balanced                      Text
type Job struct {
	Op     string `yaml:"op"`
	Algo   string `yaml:"algo,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	Left   []int  `yaml:"left,omitempty"`
	Right  []int  `yaml:"right,omitempty"`
	N      int    `yaml:"n,omitempty"`
	Entry  int    `yaml:"entry,omitempty"`
	Text   string `yaml:"text,omitempty"`
}

// JobFile is the document read by `linearkit run`.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a JobFile from path. Unknown keys are rejected so that a
// misspelled field does not silently fall back to its zero value.
func LoadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var doc JobFile
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return doc.Jobs, nil
}

// Execute runs the job and returns its printable result.
func (j Job) Execute(log *zap.Logger) (string, error) {
	log.Debug("executing job", zap.String("op", j.Op), zap.Int("values", len(j.Values)))

	switch j.Op {
	case "sort":
		return j.runSort(log)
	case "nge", "pge", "nse", "pse", "span":
		return fmt.Sprint(nearest[j.Op](j.Values)), nil
	case "rect":
		return strconv.Itoa(monostack.LargestRectangle(j.Values)), nil
	case "reverse", "middle", "segregate", "dedupe", "nth", "cycle":
		return j.runChain(log)
	case "merge":
		return j.runMerge()
	case "balanced":
		return strconv.FormatBool(stack.Balanced(j.Text)), nil
	default:
		return "", fmt.Errorf("%q: %w", j.Op, ErrUnknownOp)
	}
}

var nearest = map[string]func([]int) []int{
	"nge":  monostack.NextGreater,
	"pge":  monostack.PrevGreater,
	"nse":  monostack.NextSmaller,
	"pse":  monostack.PrevSmaller,
	"span": monostack.StockSpan,
}

func (j Job) runSort(log *zap.Logger) (string, error) {
	alg := sorting.AlgorithmMerge
	if j.Algo != "" {
		var err error
		if alg, err = sorting.ParseAlgorithm(j.Algo); err != nil {
			return "", err
		}
	}
	vals := slices.Clone(j.Values)
	if err := sorting.Sort(vals, alg); err != nil {
		return "", err
	}
	log.Debug("sorted", zap.Stringer("algo", alg), zap.Int("n", len(vals)))

	return fmt.Sprint(vals), nil
}

func (j Job) runChain(log *zap.Logger) (string, error) {
	a := chain.NewArena(chain.WithCapacity(len(j.Values)))
	head := chain.FromSlice(a, j.Values)

	switch j.Op {
	case "reverse":
		head = linked.Reverse(a, head)
	case "segregate":
		head = linked.SegregateEvenOdd(a, head)
	case "dedupe":
		if !slices.IsSorted(j.Values) {
			return "", ErrNotAscending
		}
		head = linked.RemoveDuplicates(a, head)
	case "middle":
		return valueOrNone(a, linked.Middle(a, head)), nil
	case "nth":
		id, err := linked.NthFromEnd(a, head, j.N)
		if err != nil {
			return "", fmt.Errorf("nth %d of %d: %w", j.N, len(j.Values), err)
		}
		return valueOrNone(a, id), nil
	case "cycle":
		return cycleReport(a, head, j.Entry, log)
	}

	return render(a, head)
}

// cycleReport links the tail to the entry-th node, then detects, measures
// and removes the cycle again.
func cycleReport(a *chain.Arena, head chain.ID, entry int, log *zap.Logger) (string, error) {
	n := chain.Len(a, head)
	if entry < 0 || entry > n {
		return "", &linked.RangeError{Op: "cycle", Pos: entry, Max: n}
	}
	if entry > 0 {
		a.SetNext(chain.Tail(a, head), chain.At(a, head, entry))
	}

	if !linked.DetectCycle(a, head) {
		vals, err := render(a, head)
		return "no cycle values=" + vals, err
	}
	e := linked.CycleEntry(a, head)
	length := linked.CycleLength(a, head)
	linked.RemoveCycle(a, head)
	log.Debug("cycle removed", zap.Int("entry", a.Value(e)), zap.Int("length", length))

	vals, err := render(a, head)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("entry=%d length=%d values=%s", a.Value(e), length, vals), nil
}

func (j Job) runMerge() (string, error) {
	if !slices.IsSorted(j.Left) || !slices.IsSorted(j.Right) {
		return "", ErrNotAscending
	}
	a := chain.NewArena(chain.WithCapacity(len(j.Left) + len(j.Right)))
	head := linked.MergeSorted(a, chain.FromSlice(a, j.Left), chain.FromSlice(a, j.Right))

	return render(a, head)
}

func render(a *chain.Arena, head chain.ID) (string, error) {
	vals, err := chain.Values(a, head)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(vals), nil
}

func valueOrNone(a *chain.Arena, id chain.ID) string {
	if id == chain.Nil {
		return "none"
	}
	return strconv.Itoa(a.Value(id))
}
