package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// renderTable prints an aligned table to stdout.
func renderTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

// bar renders a proportional text bar for the breakdown chart, one '#' per
// two percent.
func bar(share float64) string {
	n := int(share / 2)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("#", n)
}
