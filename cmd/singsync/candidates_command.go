package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCandidatesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates <media-id>",
		Short: "Show the scored lyric alternatives for a media id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaID := strings.TrimSpace(args[0])
			if mediaID == "" {
				return fmt.Errorf("media id required")
			}

			d, err := newDaemon(ctx, true)
			if err != nil {
				return err
			}
			defer d.Close()

			result := d.Resolve(cmd.Context(), mediaID)

			fmt.Fprintln(cmd.OutOrStdout(), renderCandidateTable(result))
			return nil
		},
	}
	return cmd
}
