package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-notes/internal/notes"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image-notes IMAGE_PATH",
		Short: "Analyze image for game design inspiration",
		Long: `image-notes reads the dimensions, format and color mode of an image
and prints design notes based on its orientation and resolution.

An image that cannot be read produces a single "Error analyzing image: ..."
line on stdout instead of the notes. The exit status is 0 in both cases.

Environment variables:
  IMAGE_NOTES_LOG_LEVEL=debug    Enable debug logging on stderr`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), notes.Analyze(args[0]))
			return err
		},
	}
	return cmd
}
