// Package report renders an HTML visualization of a Buchberger run, the
// supplemental visualizer SPEC_FULL.md's DOMAIN STACK wires the go-echarts
// dependency into: basis size and pair-queue length over the main loop's
// iterations, two line series (basis size, queue length) per batch id,
// grounded on the
// components.NewPage/charts.NewLine pattern Additionnals/plot_pacs_sweep.go
// uses for its own sweep-parameter scatter chart.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vFGB/groebner"
)

// Run is one id's labeled Buchberger telemetry trail.
type Run struct {
	Label     string
	Snapshots []groebner.Snapshot
}

// WriteHTML renders one interactive line chart (basis size and pair-queue
// length, one pair of series per run) to w.
func WriteHTML(w io.Writer, runs []Run) error {
	page := components.NewPage().SetPageTitle("Buchberger run telemetry")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Basis size and pair-queue length over iterations"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	var xAxis []int
	maxLen := 0
	for _, r := range runs {
		if len(r.Snapshots) > maxLen {
			maxLen = len(r.Snapshots)
		}
	}
	for i := 0; i < maxLen; i++ {
		xAxis = append(xAxis, i+1)
	}
	line.SetXAxis(xAxis)

	for _, r := range runs {
		basisItems := make([]opts.LineData, len(r.Snapshots))
		queueItems := make([]opts.LineData, len(r.Snapshots))
		for i, s := range r.Snapshots {
			basisItems[i] = opts.LineData{Value: s.BasisSize}
			queueItems[i] = opts.LineData{Value: s.QueueLen}
		}
		line.AddSeries(fmt.Sprintf("%s: basis size", r.Label), basisItems)
		line.AddSeries(fmt.Sprintf("%s: queue length", r.Label), queueItems)
	}

	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}
