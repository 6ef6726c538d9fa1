package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Stats struct {
	Species int
	Failed  []string
	Skipped []string
	Records int
	Bytes   int64
	Elapsed time.Duration
}

func (s Stats) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Run summary", ""})
	t.AppendRow(table.Row{"Species", s.Species})
	t.AppendRow(table.Row{"Failed", joinOrDash(s.Failed)})
	t.AppendRow(table.Row{"Skipped", joinOrDash(s.Skipped)})
	t.AppendRow(table.Row{"Records", s.Records})
	t.AppendRow(table.Row{"Fetched", humanBytes(s.Bytes)})
	t.AppendRow(table.Row{"Time", s.Elapsed.Round(time.Second)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func joinOrDash(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, ", ")
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
