package termui

import (
	"fmt"
	"strings"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// WaterfallLine is one rendered bar of the chart.
type WaterfallLine struct {
	Label  string
	Offset int
	Width  int
	Ms     float64
}

// BuildWaterfall lays out proportional bars for the phases that actually ran.
// Each bar's width is its share of total scaled to maxWidth (minimum 1 cell
// for a nonzero phase) and its offset is the cumulative duration of the
// phases before it. Zero or unmeasured phases are omitted entirely.
func BuildWaterfall(snap domain.TimingSnapshot, maxWidth int) []WaterfallLine {
	if maxWidth <= 0 {
		maxWidth = 40
	}
	total := snap.TotalMs
	var lines []WaterfallLine
	var cumMs float64
	for _, row := range waterfallRows {
		ms, ok := snap.Phase(row.Phase)
		if !ok || ms <= 0 {
			continue
		}
		width := 0
		offset := 0
		if total > 0 {
			width = int(ms / total * float64(maxWidth))
			offset = int(cumMs / total * float64(maxWidth))
		}
		if width < 1 {
			width = 1
		}
		if offset+width > maxWidth {
			offset = maxWidth - width
			if offset < 0 {
				offset = 0
			}
		}
		lines = append(lines, WaterfallLine{Label: row.Label, Offset: offset, Width: width, Ms: ms})
		cumMs += ms
	}
	shrinkToBudget(lines, maxWidth)
	return lines
}

// shrinkToBudget takes the excess caused by min-width bumps out of the
// widest bars so the summed widths never exceed maxWidth.
func shrinkToBudget(lines []WaterfallLine, maxWidth int) {
	for {
		sum := 0
		for _, l := range lines {
			sum += l.Width
		}
		excess := sum - maxWidth
		if excess <= 0 {
			return
		}
		wi := 0
		for i := range lines {
			if lines[i].Width > lines[wi].Width {
				wi = i
			}
		}
		if lines[wi].Width <= 1 {
			return
		}
		cut := excess
		if cut > lines[wi].Width-1 {
			cut = lines[wi].Width - 1
		}
		lines[wi].Width -= cut
	}
}

func (l WaterfallLine) String() string {
	return fmt.Sprintf("%-9s %s%s %s",
		l.Label,
		strings.Repeat(" ", l.Offset),
		strings.Repeat("█", l.Width),
		fmtMs(l.Ms))
}
