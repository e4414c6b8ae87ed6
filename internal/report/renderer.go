package report

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// spinner frames similar to the docker CLI
var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Renderer drives a live terminal area showing scan progress. It owns a
// ticker goroutine that re-renders the area every 120ms until stopped.
type Renderer struct {
	progress *Progress

	area         *pterm.AreaPrinter
	frameIdx     int
	maxLineLen   int
	lastRendered string
	stop         chan struct{}
	wg           sync.WaitGroup
	started      bool
}

// NewRenderer creates a renderer over the given progress state.
func NewRenderer(p *Progress) *Renderer {
	return &Renderer{progress: p, stop: make(chan struct{})}
}

// Start opens the live area and begins the render loop. Starting an
// already started renderer is a no-op.
func (r *Renderer) Start() {
	if r.started {
		return
	}
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return
	}
	r.area = area
	r.started = true
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				r.frameIdx++
				r.render()
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop tears down the render loop and removes the area. Stopping a
// renderer that never started is a no-op.
func (r *Renderer) Stop() {
	if !r.started {
		return
	}
	close(r.stop)
	r.wg.Wait()
	r.area.Stop()
	r.area = nil
	r.stop = make(chan struct{})
	r.started = false
	cursor.Show()
}

// render draws one frame. Lines are padded to the widest line seen so
// far so a shrinking line never leaves stale characters behind.
func (r *Renderer) render() {
	if r.area == nil {
		return
	}
	s := r.progress.Snapshot()
	spin := frames[r.frameIdx%len(frames)]
	line := fmt.Sprintf("%s scanning n=%d (%.1f%%) survivors so far: %d",
		spin, s.LastN, s.Percent(), s.Survivors)
	if l := utf8.RuneCountInString(line); l > r.maxLineLen {
		r.maxLineLen = l
	}
	if pad := r.maxLineLen - utf8.RuneCountInString(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if line == r.lastRendered {
		return
	}
	r.lastRendered = line
	r.area.Update(line)
}

// Summary describes one completed scan for terminal presentation.
type Summary struct {
	Start     int
	End       int
	Survivors int64
	MeanCount float64
	Workers   int
	Elapsed   time.Duration
}

// PrintSummary renders the completion box for a finished scan.
func PrintSummary(s Summary) {
	title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Scan Completed")
	details := fmt.Sprintf("Range: [%d, %d)\nSurvivors: %d\nMean per n: %.4f\nWorkers: %d\nDuration: %s",
		s.Start, s.End, s.Survivors, s.MeanCount, s.Workers, s.Elapsed.Round(time.Millisecond))
	box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details)
	pterm.Println(box)
}

// PrintFailure renders the failure box for an aborted scan.
func PrintFailure(elapsed time.Duration, msg string) {
	title := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Scan Failed")
	details := fmt.Sprintf("Duration: %s\n\n%s", elapsed.Round(time.Millisecond), msg)
	box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details)
	pterm.Println(box)
}

// PrintCumulativeChart renders the cumulative survivor totals as a bar
// chart, downsampled into at most buckets bars labeled by the n at the
// end of each bucket.
func PrintCumulativeChart(start int, cumulative []int64, buckets int) {
	if len(cumulative) == 0 || buckets < 1 {
		return
	}
	if buckets > len(cumulative) {
		buckets = len(cumulative)
	}
	bars := make(pterm.Bars, 0, buckets)
	for b := 1; b <= buckets; b++ {
		idx := len(cumulative)*b/buckets - 1
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("n≤%d", start+idx),
			Value: int(cumulative[idx]),
		})
	}
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Cumulative survivors"))
	_ = pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}
