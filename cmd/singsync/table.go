package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"singsync/internal/lyrics"
)

// renderCandidateTable formats the scored alternatives for terminal output,
// marking the selected candidate in the first column.
func renderCandidateTable(result lyrics.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Label", "Provenance", "Mode", "Sync", "Lines", "Score"})

	for _, c := range result.Candidates {
		mark := ""
		if c.ID == result.SelectedCandidateID {
			mark = "*"
		}
		tw.AppendRow(table.Row{
			mark,
			c.Label,
			string(c.Provenance),
			string(c.Mode),
			string(c.SyncMethod),
			strconv.Itoa(len(c.Lines)),
			strconv.FormatFloat(c.Score, 'f', 0, 64),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
