package ui

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
)

type SpeciesCount struct {
	Species string
	Count   int
}

// WriteMarkdown renders the run summary and the per-species counts as a
// Markdown document.
func (s Stats) WriteMarkdown(w io.Writer, perSpecies []SpeciesCount) error {
	md := markdown.NewMarkdown(w)

	md.H1("Shiny sprite run")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Species", strconv.Itoa(s.Species)},
			{"Failed", joinOrDash(s.Failed)},
			{"Skipped", joinOrDash(s.Skipped)},
			{"Records", strconv.Itoa(s.Records)},
			{"Fetched", humanBytes(s.Bytes)},
			{"Time", s.Elapsed.Round(time.Second).String()},
		},
	})
	md.PlainText("")

	if len(perSpecies) > 0 {
		md.H2("Per species")
		md.PlainText("")

		rows := make([][]string, 0, len(perSpecies))
		for _, sc := range perSpecies {
			rows = append(rows, []string{"`" + sc.Species + "`", strconv.Itoa(sc.Count)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Species", "Valid shiny"},
			Rows:   rows,
		})
	}

	return md.Build()
}
