package rngbench

import (
	"fmt"
	"html/template"
	"io"
	"slices"
)

const (
	plotLabelWidth = 200
	plotWidth      = 600
	plotRowHeight  = 32
	plotTop        = 10
	plotTicks      = 4
)

var boxPlotPage = template.Must(template.New("boxplot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" font-family="sans-serif" font-size="12">
{{- range .Boxes}}
<g>
<title>{{.Name}}: median {{printf "%.3f" .Median}} ns, quartiles {{printf "%.3f" .Q1}} to {{printf "%.3f" .Q3}} ns</title>
<text x="{{.LabelX}}" y="{{.Mid}}" text-anchor="end" dominant-baseline="middle">{{.Name}}</text>
<line x1="{{.XMin}}" x2="{{.XMax}}" y1="{{.Mid}}" y2="{{.Mid}}" stroke="black"/>
<rect x="{{.XQ1}}" y="{{.Top}}" width="{{.BoxWidth}}" height="{{.BoxHeight}}" fill="#9ecae1" stroke="black"/>
<line x1="{{.XMedian}}" x2="{{.XMedian}}" y1="{{.Top}}" y2="{{.Bottom}}" stroke="#d62728" stroke-width="2"/>
</g>
{{- end}}
{{- range .Ticks}}
<line x1="{{.X}}" x2="{{.X}}" y1="{{$.AxisY}}" y2="{{.Y2}}" stroke="black"/>
<text x="{{.X}}" y="{{.LabelY}}" text-anchor="middle">{{.Label}}</text>
{{- end}}
<text x="{{.AxisLabelX}}" y="{{.AxisLabelY}}" text-anchor="middle">ns/{{.Unit}}</text>
</svg>
</body>
</html>
`))

type boxPlotPageData struct {
	Title                  string
	Unit                   string
	Width, Height          int
	AxisY                  int
	AxisLabelX, AxisLabelY int
	Boxes                  []boxPlotRow
	Ticks                  []boxPlotTick
}

type boxPlotRow struct {
	Name                        string
	Min, Q1, Median, Q3, Max    float64
	LabelX                      int
	Top, Mid, Bottom, BoxHeight int
	XMin, XQ1, XMedian, XQ3     float64
	XMax, BoxWidth              float64
}

type boxPlotTick struct {
	X      float64
	Y2     int
	LabelY int
	Label  string
}

// quartiles returns the minimum, the quartiles and the maximum of samples, interpolating
// linearly between neighbouring values. All are 0 for an empty sample.
func quartiles(samples []float64) (lo, q1, med, q3, hi float64) {
	if len(samples) == 0 {
		return
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	at := func(q float64) float64 {
		pos := q * float64(len(sorted)-1)
		i := int(pos)
		if i+1 >= len(sorted) {
			return sorted[len(sorted)-1]
		}
		return sorted[i] + (pos-float64(i))*(sorted[i+1]-sorted[i])
	}
	return sorted[0], at(0.25), at(0.5), at(0.75), sorted[len(sorted)-1]
}

func renderBoxPlots(w io.Writer, results []Result) error {
	unit := "op"
	if len(results) > 0 && results[0].Unit != "" {
		unit = results[0].Unit
	}
	rows := make([]boxPlotRow, len(results))
	scale := 0.0
	for i, r := range results {
		row := boxPlotRow{Name: r.Name}
		row.Min, row.Q1, row.Median, row.Q3, row.Max = quartiles(r.Samples)
		scale = max(scale, row.Max)
		rows[i] = row
	}
	if scale <= 0 {
		scale = 1
	}
	x := func(v float64) float64 { return plotLabelWidth + v/scale*plotWidth }

	for i := range rows {
		row := &rows[i]
		row.LabelX = plotLabelWidth - 8
		row.Top = plotTop + i*plotRowHeight + 4
		row.BoxHeight = plotRowHeight - 8
		row.Bottom = row.Top + row.BoxHeight
		row.Mid = row.Top + row.BoxHeight/2
		row.XMin, row.XQ1, row.XMedian = x(row.Min), x(row.Q1), x(row.Median)
		row.XQ3, row.XMax = x(row.Q3), x(row.Max)
		row.BoxWidth = row.XQ3 - row.XQ1
	}

	axisY := plotTop + len(rows)*plotRowHeight
	data := boxPlotPageData{
		Title:      "Runtime per call",
		Unit:       unit,
		Width:      plotLabelWidth + plotWidth + 40,
		Height:     axisY + 50,
		AxisY:      axisY,
		AxisLabelX: plotLabelWidth + plotWidth/2,
		AxisLabelY: axisY + 40,
		Boxes:      rows,
	}
	for i := 0; i <= plotTicks; i++ {
		v := scale * float64(i) / plotTicks
		data.Ticks = append(data.Ticks, boxPlotTick{X: x(v), Y2: axisY + 5, LabelY: axisY + 18, Label: fmt.Sprintf("%.2f", v)})
	}
	return boxPlotPage.Execute(w, data)
}
