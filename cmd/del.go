package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// delCmd removes transactions by id.
type delCmd struct{}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete transactions by id" }
func (*delCmd) Usage() string {
	return `hl del <id> [<id>...]

  Deletes the transactions with the given ids. Unknown ids are ignored.
`
}

func (*delCmd) SetFlags(*flag.FlagSet) {}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}

	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	for _, id := range f.Args() {
		s.DeleteTransaction(id)
	}
	fmt.Printf("Deleted %d transaction(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
