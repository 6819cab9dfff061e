package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"homeledger"
)

// importCmd restores collections from a JSON export.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON export into the ledger" }
func (*importCmd) Usage() string {
	return `hl import <file>

  Reads a JSON export and replaces every collection present in it. Absent
  collections are left untouched. A malformed document changes nothing.
  Use "-" to read from stdin.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file is required.")
		return subcommands.ExitUsageError
	}

	var blob []byte
	var err error
	if name := f.Arg(0); name == "-" {
		blob, err = io.ReadAll(os.Stdin)
	} else {
		blob, err = os.ReadFile(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := homeledger.Import(s, blob); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Import complete.")
	return subcommands.ExitSuccess
}
