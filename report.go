package rngbench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/olekukonko/tablewriter"
)

// Format is an output format of Render.
type Format string

const (
	// FormatText is an aligned plain text table.
	FormatText Format = "text"
	// FormatMarkdown is a table ready to paste into markdown documents.
	FormatMarkdown Format = "markdown"
	// FormatCSV has one record per result and a header line.
	FormatCSV Format = "csv"
	// FormatJSON is the indented JSON array of all results including their samples.
	FormatJSON Format = "json"
	// FormatHTML is a standalone page with a box plot of the samples of every result.
	FormatHTML Format = "html"
)

// Formats lists all formats supported by Render.
var Formats = []Format{FormatText, FormatMarkdown, FormatCSV, FormatJSON, FormatHTML}

// SummaryTemplate prints one line per result, like "2.31 ns/op for Sfc4".
const SummaryTemplate = "{{range .}}{{printf \"%.2f\" .Median}} ns/op for {{.Name}}\n{{end}}"

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Render writes results to w in the given format.
func Render(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatText:
		renderTable(w, results, false)
		return nil
	case FormatMarkdown:
		renderTable(w, results, true)
		return nil
	case FormatCSV:
		return renderCSV(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatHTML:
		return renderBoxPlots(w, results)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// RenderTemplate executes the text/template tmpl with results as data.
func RenderTemplate(w io.Writer, tmpl string, results []Result) error {
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("could not parse template: %w", err)
	}
	return t.Execute(w, results)
}

func tableRows(results []Result, markdown bool) (header []string, rows [][]string) {
	unit := "op"
	if len(results) > 0 && results[0].Unit != "" {
		unit = results[0].Unit
	}
	header = []string{"relative", "ns/" + unit, unit + "/s", "err%", "confidence", "benchmark"}
	for _, r := range results {
		relative := ""
		if r.Relative != 0 {
			relative = fmt.Sprintf("%.1f%%", r.Relative)
		}
		confidence := ""
		if r.Confidence != nil {
			confidence = fmt.Sprintf("%.1f%%", *r.Confidence*100)
		}
		name := r.Name
		if markdown {
			name = "`" + name + "`"
		}
		rows = append(rows, []string{
			relative,
			fmt.Sprintf("%.2f", r.Median),
			fmt.Sprintf("%.0f", r.OpsPerSecond),
			fmt.Sprintf("%.1f%%", r.MedianAbsPercentError*100),
			confidence,
			name,
		})
	}
	return header, rows
}

func renderTable(w io.Writer, results []Result, markdown bool) {
	header, rows := tableRows(results, markdown)
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})
	if markdown {
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
	}
	table.AppendBulk(rows)
	table.Render()
}

func renderCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "unit", "epochs", "epoch_iterations", "median_ns", "mean_ns", "stddev_ns", "mdape", "ops_per_second", "relative", "confidence"}
	if err := cw.Write(header); err != nil {
		return err
	}
	ff := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	for _, r := range results {
		confidence := ""
		if r.Confidence != nil {
			confidence = ff(*r.Confidence)
		}
		record := []string{
			r.Name,
			r.Unit,
			strconv.FormatUint(r.Epochs, 10),
			strconv.FormatUint(r.EpochIterations, 10),
			ff(r.Median),
			ff(r.Mean),
			ff(r.StdDev),
			ff(r.MedianAbsPercentError),
			ff(r.OpsPerSecond),
			ff(r.Relative),
			confidence,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
