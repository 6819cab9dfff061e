package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/renderer"
)

// loansCmd lists loans.
type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list loans and their payment schedules" }
func (*loansCmd) Usage() string {
	return `hl loans

  Lists every loan with its remaining amount, monthly payment and next
  payment date.
`
}

func (*loansCmd) SetFlags(*flag.FlagSet) {}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.LoansMarkdown(s.Loans(), s.Settings().Currency))
	return subcommands.ExitSuccess
}
