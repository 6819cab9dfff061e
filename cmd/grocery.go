package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/renderer"
)

// groceryCmd lists grocery lists.
type groceryCmd struct{}

func (*groceryCmd) Name() string     { return "grocery" }
func (*groceryCmd) Synopsis() string { return "list grocery lists and their items" }
func (*groceryCmd) Usage() string {
	return `hl grocery

  Lists every grocery list with its items, quantities, price estimates and
  the estimated total.
`
}

func (*groceryCmd) SetFlags(*flag.FlagSet) {}

func (c *groceryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.GroceryMarkdown(s.GroceryLists(), s.Settings().Currency))
	return subcommands.ExitSuccess
}
