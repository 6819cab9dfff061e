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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	query  string
	period string
	date   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, with search and period filters" }
func (*listCmd) Usage() string {
	return `hl list [-q <query>] [-p <period>] [-d <date>]

  Lists transactions. -q keeps records whose description, category or shop
  contains the query. -p restricts to the period containing -d (default today).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Case-insensitive search query.")
	f.StringVar(&c.period, "p", "", "Period filter: daily, weekly, monthly or yearly.")
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the period filter.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	transactions := s.Transactions()

	if c.period != "" {
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		transactions = homeledger.FilterRange(transactions, date.NewRange(on, period))
	}
	if c.query != "" {
		transactions = homeledger.Search(transactions, c.query)
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, s.Settings().Currency))
	return subcommands.ExitSuccess
}
