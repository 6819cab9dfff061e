package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"homeledger"
	"homeledger/date"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind        string
	amount      string
	category    string
	description string
	date        string
	shop        string
	recurring   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `hl add -a <amount> -c <category> -m <description> [-t <type>] [-d <date>] [-shop <shop>] [-r <period>]

  Records a transaction. The category must name an existing category of the
  same type. With -r the transaction repeats with the given period.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 12.50.")
	f.StringVar(&c.category, "c", "", "Category name.")
	f.StringVar(&c.description, "m", "", "Description of the transaction.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the transaction.")
	f.StringVar(&c.shop, "shop", "", "Shop the money was spent at.")
	f.StringVar(&c.recurring, "r", "", "Recurrence period: daily, weekly, monthly or yearly.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := homeledger.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing type: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := homeledger.Transaction{
		ID:          homeledger.NewID(),
		Kind:        kind,
		Amount:      amount,
		Category:    c.category,
		Description: c.description,
		Date:        on,
		Shop:        c.shop,
	}
	if c.recurring != "" {
		period, err := date.ParsePeriod(c.recurring)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing recurrence: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Recurring = true
		tx.RecurringPeriod = &period
	}

	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := s.SaveTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s (%s)\n", tx.Kind, tx.Amount, tx.ID)
	return subcommands.ExitSuccess
}
