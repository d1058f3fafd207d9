package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/collections"
	"github.com/roach88/ease/internal/stablesort"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Primitive string
	By        string
	Reverse   bool
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Stably sort a JSON or YAML document",
		Long: `Stably sort a JSON or YAML document read from a file or stdin.

Elements that compare equal keep their input order. Values compare
numerically when both are numbers and as text otherwise.

Primitives:
  usort   sort values, drop keys
  uasort  sort values, keep key associations
  uksort  sort by key, keep key associations

Without --primitive, mappings use uasort and sequences use usort.
An unsupported primitive is reported as misuse through the logger and the
document is printed unchanged (exit code 1).

Examples:
  ease sort data.json
  ease sort --primitive uksort data.yaml
  ease sort --by meta.title posts.json
  cat data.json | ease sort --reverse`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, optionalArg(args, 0), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Primitive, "primitive", "", "usort|uasort|uksort (default: by document shape)")
	cmd.Flags().StringVar(&opts.By, "by", "", "compare records by the value at this dot path")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "descending order (ties keep input order)")

	return cmd
}

func runSort(opts *SortOptions, path string, cmd *cobra.Command) error {
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	l, closeLog, err := newLogger(opts.Config, newEnvironment(opts.Config), cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create logger", err)
	}
	defer closeQuietly(closeLog)

	primitive := stablesort.Primitive(opts.Primitive)
	if primitive == "" {
		primitive = stablesort.PrimitiveUsort
		if collections.IsAssoc(doc) {
			primitive = stablesort.PrimitiveUasort
		}
	}

	var comparator any
	if primitive == stablesort.PrimitiveUksort {
		comparator = func(a, b string) int {
			return direction(opts.Reverse, strings.Compare(a, b))
		}
	} else {
		comparator = func(a, b any) int {
			if opts.By != "" {
				a = collections.Get(a, opts.By, "")
				b = collections.Get(b, opts.By, "")
			}
			return direction(opts.Reverse, compareValues(a, b))
		}
	}

	// Comparators built here always have the right shape, so Sort reports
	// misuse exactly when the primitive or the document is unsortable.
	misuse := !slices.Contains(stablesort.Primitives, primitive) || !collections.IsContainer(doc)

	sorted := stablesort.Sort(doc, primitive, comparator, stablesort.WithReporter(l))

	if err := formatter(opts.RootOptions, cmd).Document(sorted); err != nil {
		return err
	}
	if misuse {
		return NewExitError(ExitFailure, fmt.Sprintf("sort: cannot sort %T with %q", doc, primitive))
	}
	return nil
}

func direction(reverse bool, c int) int {
	if reverse {
		return -c
	}
	return c
}

// compareValues orders two numbers numerically and anything else by text.
func compareValues(a, b any) int {
	x, aok := toFloat(a)
	y, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(x, y)
	}
	return strings.Compare(collections.Text(a), collections.Text(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
