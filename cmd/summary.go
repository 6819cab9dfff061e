package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger"
	"homeledger/date"
	"homeledger/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the monthly financial summary" }
func (*summaryCmd) Usage() string {
	return `hl summary [-d <date>]

  Displays income, expenses, balance, savings and the trend against the
  previous month, for the month containing the given date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Any date inside the month to summarize.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	summary := homeledger.Summarize(s.Transactions(), on)
	printMarkdown(renderer.SummaryMarkdown(summary, s.Settings().Currency))
	return subcommands.ExitSuccess
}
