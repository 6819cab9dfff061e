package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homeledger/renderer"
)

// goalsCmd lists savings goals.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `hl goals

  Lists every savings goal with the saved amount, target, progress, deadline
  and priority.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.GoalsMarkdown(s.SavingsGoals(), s.Settings().Currency))
	return subcommands.ExitSuccess
}
