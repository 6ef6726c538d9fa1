package shiny

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/brogergvhs/shinydex/internal/providers"
	"github.com/brogergvhs/shinydex/internal/util"
)

// Progress is notified once per species, whatever the outcome.
type Progress interface {
	Advance(species string)
}

type Runner struct {
	Source   providers.Source
	Host     string
	Exclude  []string
	Out      io.Writer
	Progress Progress
}

type Result struct {
	Lines   []string
	Counts  map[string]int
	Failed  []string
	Skipped []string
}

// Run scrapes the species one after another. A failing species is reported
// and skipped; it never aborts the run. Cancelling ctx stops the loop but
// keeps what was already collected.
func (r *Runner) Run(ctx context.Context, species []string) Result {
	res := Result{Counts: map[string]int{}}

	var lines []string
	for _, sp := range species {
		if ctx.Err() != nil {
			break
		}

		if IsExcluded(sp, r.Exclude) {
			res.Skipped = append(res.Skipped, sp)
			r.advance(sp)
			continue
		}

		var (
			found int
			err   error
		)
		lines, found, err = r.scrapeOne(ctx, sp, lines)
		r.advance(sp)

		if err != nil {
			var se *providers.StatusError
			if errors.As(err, &se) {
				r.printf("%s: pagina non trovata\n", sp)
			} else {
				r.printf("Errore con %s: %v\n", sp, err)
			}
			res.Failed = append(res.Failed, sp)
			continue
		}

		res.Counts[sp] = found
		r.printf("%s: %d shiny validi\n", sp, found)
	}

	res.Lines = Dedupe(lines)
	return res
}

func (r *Runner) scrapeOne(ctx context.Context, species string, acc []string) ([]string, int, error) {
	images, err := r.Source.Images(ctx, species)
	if err != nil {
		return acc, 0, err
	}

	recs := Extract(species, images, r.Host)
	for _, rec := range recs {
		acc = append(acc, rec.String())
	}

	return acc, len(recs), nil
}

// Flush overwrites path with the collected lines and prints the summary.
func (r *Runner) Flush(res Result, path string) error {
	if err := util.WriteLines(path, res.Lines); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	r.printf("\nFATTO\n")
	r.printf("Totale shiny salvati: %d\n", len(res.Lines))
	r.printf("File: %s\n", path)

	return nil
}

func (r *Runner) advance(species string) {
	if r.Progress != nil {
		r.Progress.Advance(species)
	}
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(r.Out, format, args...)
}
