package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/date"
	"homeledger/renderer"
)

// budgetsCmd holds the flags for the 'budgets' subcommand.
type budgetsCmd struct {
	date string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display monthly budgets and their utilization" }
func (*budgetsCmd) Usage() string {
	return `hl budgets [-d <date>]

  Displays every monthly budget with the amount actually spent in the month
  containing the given date, and the overall utilization percentage.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Any date inside the month to report on.")
}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.BudgetsMarkdown(s.Transactions(), s.Budgets(), on, s.Settings().Currency))
	return subcommands.ExitSuccess
}
