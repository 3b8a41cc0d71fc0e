package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eargollo/thash/internal/config"
	"github.com/eargollo/thash/internal/hash"
)

// ErrUsage is returned when the command is not given exactly one path.
var ErrUsage = errors.New("usage")

// NewRootCommand returns the thash command. Errors are returned, not
// printed; the caller reports them and sets the exit status.
func NewRootCommand() *cobra.Command {
	var flags config.Flags
	cmd := &cobra.Command{
		Use:   "thash <file>",
		Short: "Print the SHA-256 digest of a file",
		Long: `Print the SHA-256 digest of a file as "SHA256(<file>) = <hex>".

Files larger than 10 MiB are memory-mapped; smaller files, and files that
cannot be mapped, are read through an 8 MiB buffer. Empty files are rejected
unless --allow-empty is given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: %s", ErrUsage, cmd.UseLine())
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			return run(cmd, args[0], cfg)
		},
	}
	cmd.Flags().BoolVarP(&flags.Verbose, config.FlagVerbose, "v", config.DefaultVerbose, "Log strategy and timing to stderr")
	cmd.Flags().BoolVar(&flags.AllowEmpty, config.FlagAllowEmpty, config.DefaultAllowEmpty, "Print the empty-input digest for zero-byte files instead of failing")
	cmd.Flags().StringVar(&flags.MaxReadRate, config.FlagMaxReadRate, config.DefaultMaxReadRate, "Throttle reads to this many bytes per second, e.g. 64MiB (0 = unlimited)")
	return cmd
}

func run(cmd *cobra.Command, path string, cfg *config.Config) error {
	res, err := hash.Run(cmd.Context(), path, &hash.Options{
		AllowEmpty:  cfg.AllowEmpty(),
		MaxReadRate: cfg.MaxReadRate(),
		Verbose:     cfg.Verbose(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
	return err
}
