package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/elliotchance/orderedmap/v2"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	seriesStyle = lipgloss.NewStyle().Faint(true)
)

var reportHeaders = []string{
	"variant", "keys", "peak cap", "final cap", "grows", "shrinks", "compactions",
	"heap KB", PhaseInsert, PhaseLookup, PhaseOverwrite, PhaseDelete, "status",
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func reportRow(res *Result) []string {
	timing := func(phase string) string {
		d, _ := res.Timings.Get(phase)
		return formatDuration(d)
	}
	status := okStyle.Render("ok")
	if res.Failed() {
		status = failStyle.Render(strings.Join(res.Failures.Keys(), ","))
	}
	return []string{
		res.Label,
		strconv.Itoa(res.Keys),
		strconv.Itoa(res.PeakCap),
		strconv.Itoa(res.Stats.Cap),
		strconv.Itoa(res.Stats.Grows),
		strconv.Itoa(res.Stats.Shrinks),
		strconv.Itoa(res.Stats.Compactions),
		strconv.FormatUint(res.HeapKB, 10),
		timing(PhaseInsert),
		timing(PhaseLookup),
		timing(PhaseOverwrite),
		timing(PhaseDelete),
		status,
	}
}

// render lays the results out as a table in the order they ran, followed by
// the failure details and, when collected, the metric series of each run
func render(results *orderedmap.OrderedMap[string, *Result]) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(reportHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})
	var details []string
	for el := results.Front(); el != nil; el = el.Next() {
		res := el.Value
		t.Row(reportRow(res)...)
		for f := res.Failures.Front(); f != nil; f = f.Next() {
			details = append(details, failStyle.Render(fmt.Sprintf("%s %s: %s", res.Label, f.Key, f.Value)))
		}
		if len(res.Series) > 0 {
			names := make([]string, 0, len(res.Series))
			for name := range res.Series {
				names = append(names, name)
			}
			sort.Strings(names)
			details = append(details, titleStyle.Render(res.Label+" metrics"))
			for _, name := range names {
				details = append(details, seriesStyle.Render(fmt.Sprintf("  %s %g", name, res.Series[name])))
			}
		}
	}
	out := []string{titleStyle.Render("hashtable workload"), t.Render()}
	return lipgloss.JoinVertical(lipgloss.Left, append(out, details...)...)
}

// failed reports whether any run recorded a failed check
func failed(results *orderedmap.OrderedMap[string, *Result]) bool {
	for el := results.Front(); el != nil; el = el.Next() {
		if el.Value.Failed() {
			return true
		}
	}
	return false
}
