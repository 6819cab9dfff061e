package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal. When the terminal
// cannot be styled the raw markdown is printed instead.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err == nil {
		if out, err := r.Render(markdown); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(markdown)
}
