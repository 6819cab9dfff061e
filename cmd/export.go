package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger"
)

// exportCmd writes the whole ledger as one JSON document.
type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole ledger as JSON" }
func (*exportCmd) Usage() string {
	return `hl export [-o <file>]

  Writes every collection plus the current settings as a single JSON
  document, to stdout or to the given file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	blob, err := homeledger.Export(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Println(string(blob))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, blob, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported ledger to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
