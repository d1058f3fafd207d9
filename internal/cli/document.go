package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/collections"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Default string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <address> [file]",
		Short: "Read the value at a dot-notation address",
		Long: `Read the value at a dot-notation address such as "a.b.0" or "items.[2].name".

A missing address prints the --default value (null when unset).

Examples:
  ease get plugins.0.name config.json
  ease get missing.key --default '"n/a"' < config.yaml`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, optionalArg(args, 1))
			if err != nil {
				return err
			}
			var def any
			if cmd.Flags().Changed("default") {
				def = parseScalar(opts.Default)
			}
			return formatter(opts.RootOptions, cmd).Document(collections.Get(doc, args[0], def))
		},
	}

	cmd.Flags().StringVar(&opts.Default, "default", "", "value printed when the address is missing (JSON or text)")

	return cmd
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value> [file]",
		Short: "Write a value at a dot-notation path and print the document",
		Long: `Write a value at a dot-notation path, creating intermediate nodes, and
print the resulting document. The value is parsed as JSON when valid and
used as text otherwise. "[n]" segments create sequences.

Examples:
  ease set plugins.[0].active true config.json
  ease set title 'Hello world' post.yaml`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, optionalArg(args, 2))
			if err != nil {
				return err
			}
			doc = collections.Set(doc, args[0], parseScalar(args[1]))
			return formatter(rootOpts, cmd).Document(doc)
		},
	}
}

// NewFlattenCommand creates the flatten command.
func NewFlattenCommand(rootOpts *RootOptions) *cobra.Command {
	var escape bool

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Collapse nested containers into one level of leaf values",
		Long: `Collapse nested containers into a single mapping of leaf values.
Later keys overwrite earlier ones. With --escape, leaves are HTML-escaped
strings instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, optionalArg(args, 0))
			if err != nil {
				return err
			}
			var out any = collections.Flatten(doc)
			if escape {
				out = collections.Escape(doc, nil)
			}
			return formatter(rootOpts, cmd).Document(out)
		},
	}

	cmd.Flags().BoolVar(&escape, "escape", false, "HTML-escape leaves instead of flattening")

	return cmd
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick <key>[=value] [file]",
		Short: "Keep the records that have a key, or a key with a value",
		Long: `Keep the records of a sequence or mapping whose key holds a non-empty
value, or, with
key=value, whose key equals value. Sequences are reindexed; mappings keep
their keys.

Examples:
  ease pick slug posts.json
  ease pick status=publish posts.json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, optionalArg(args, 1))
			if err != nil {
				return err
			}
			if !collections.IsContainer(doc) {
				return NewExitError(ExitCommandError, fmt.Sprintf("pick needs a sequence or mapping, got %T", doc))
			}
			key, val, hasValue := strings.Cut(args[0], "=")
			var out any
			if hasValue {
				out = collections.PickValue(doc, key, parseScalar(val))
			} else {
				out = collections.Pick(doc, key)
			}
			return formatter(rootOpts, cmd).Document(out)
		},
	}
}
