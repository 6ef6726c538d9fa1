package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// SpeciesProgress draws a single bar advancing once per scraped species.
type SpeciesProgress struct {
	p   *mpb.Progress
	bar *mpb.Bar

	current atomic.Value
	start   time.Time
}

func NewSpeciesProgress(w io.Writer, total int) *SpeciesProgress {
	p := mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	sp := &SpeciesProgress{p: p, start: time.Now()}
	sp.current.Store("")

	sp.bar = p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name("Species  "),
		),

		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + sp.current.Load().(string)
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(sp.start).Seconds()))
			}),
		),
	)

	return sp
}

func (sp *SpeciesProgress) Advance(species string) {
	sp.current.Store(species)
	sp.bar.Increment()
}

// Close completes the bar even when the run stopped early and waits for the
// final render.
func (sp *SpeciesProgress) Close() {
	if !sp.bar.Completed() {
		sp.bar.SetTotal(sp.bar.Current(), true)
	}
	sp.p.Wait()
}
