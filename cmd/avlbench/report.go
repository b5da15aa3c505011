package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/g-m-twostay/avltrees/Trees/compare"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle   = lipgloss.NewStyle().Width(10)
)

// printReport writes the results of one workload.
func printReport(w io.Writer, workloadName string, results []compare.Result) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Number of levels traversed from %s numbers:", workloadName)))
	for _, r := range results {
		height := "n/a"
		if r.Height >= 0 || r.Size == 0 {
			height = fmt.Sprint(r.Height)
		}
		fmt.Fprintf(w, "%s levels: %-12d height: %s\n", nameStyle.Render(r.Container+":"), r.Levels, height)
	}
	fmt.Fprintln(w)
}
