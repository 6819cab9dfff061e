package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/renderer"
)

// recurringCmd lists recurring transactions and their next occurrences.
type recurringCmd struct{}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list recurring transactions and their next dates" }
func (*recurringCmd) Usage() string {
	return `hl recurring

  Lists every recurring transaction with the date it next occurs after its
  recorded date.
`
}

func (*recurringCmd) SetFlags(*flag.FlagSet) {}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.RecurringMarkdown(s.Transactions(), s.Settings().Currency))
	return subcommands.ExitSuccess
}
