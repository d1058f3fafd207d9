package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/paths"
	"github.com/roach88/ease/internal/text"
)

// NewCamelCommand creates the camel command.
func NewCamelCommand(rootOpts *RootOptions) *cobra.Command {
	var keep string

	cmd := &cobra.Command{
		Use:   "camel <words...>",
		Short: "Convert words to camelCase",
		Long: `Convert words to camelCase. Characters other than ASCII letters and
digits separate words unless listed in --keep (a regexp character-class
fragment).

Examples:
  ease camel hello big world        # helloBigWorld
  ease camel --keep '\.' data-id.v2 # dataId.v2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var noStrip []string
			if keep != "" {
				noStrip = append(noStrip, keep)
			}
			return formatter(rootOpts, cmd).Success(text.CamelCase(strings.Join(args, " "), noStrip...))
		},
	}

	cmd.Flags().StringVar(&keep, "keep", "", "characters kept inside words (regexp class fragment)")

	return cmd
}

// NewPathCommand creates the path command and its subcommands.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Normalize, shorten and join paths",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "normalize <path>",
		Short:         "Drop parent references and use forward slashes",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter(rootOpts, cmd).Success(paths.Normalize(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "shorten <path>",
		Short:         "Keep the last two segments behind .../",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter(rootOpts, cmd).Success(paths.Shorten(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "join <parts...>",
		Short:         "Join segments with forward slashes",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter(rootOpts, cmd).Success(paths.Join(args...))
		},
	})

	return cmd
}
