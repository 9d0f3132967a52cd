package devserver

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const bannerWidth = 60

// PrintBanner writes the startup banner announcing url.
// Separator lines are colored only when color output is enabled (a terminal
// without NO_COLOR); the visible text is the same either way.
func PrintBanner(w io.Writer, name, url string) {
	rule := color.New(color.FgCyan).Sprint(strings.Repeat("=", bannerWidth))

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s development server\n", name)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Server running at: %s\n", url)
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w, rule)
}
