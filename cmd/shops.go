package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/renderer"
)

// shopsCmd lists shops.
type shopsCmd struct{}

func (*shopsCmd) Name() string     { return "shops" }
func (*shopsCmd) Synopsis() string { return "list shops and their spending totals" }
func (*shopsCmd) Usage() string {
	return `hl shops

  Lists every shop with its category, total spent and last visit.
`
}

func (*shopsCmd) SetFlags(*flag.FlagSet) {}

func (c *shopsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.ShopsMarkdown(s.Shops(), s.Settings().Currency))
	return subcommands.ExitSuccess
}
