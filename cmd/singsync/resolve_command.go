package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"singsync/internal/media"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		title      string
		channel    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <media-id>",
		Short: "Resolve lyrics for one media id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaID := strings.TrimSpace(args[0])
			if mediaID == "" {
				return fmt.Errorf("media id required")
			}

			d, err := newDaemon(ctx, jsonOutput)
			if err != nil {
				return err
			}
			defer d.Close()

			if title != "" || channel != "" {
				cfg, _ := ctx.ensureConfig()
				layout := media.NewLayout(cfg.Paths.WorkDir)
				meta := media.Metadata{Title: title, ChannelTitle: channel}
				if err := media.SaveMetadata(layout, mediaID, meta); err != nil {
					return fmt.Errorf("write metadata: %w", err)
				}
			}

			result := d.Resolve(cmd.Context(), mediaID)
			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			fmt.Fprintln(out, describeResult(result))
			fmt.Fprintln(out, formatResultText(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Media title used for query derivation")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel name used for query derivation")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")
	return cmd
}
