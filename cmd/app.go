// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"homeledger"
	"homeledger/storage"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&delCmd{},
	&summaryCmd{},
	&budgetsCmd{},
	&recurringCmd{},
	&goalsCmd{},
	&shopsCmd{},
	&loansCmd{},
	&groceryCmd{},
	&settingsCmd{},
	&exportCmd{},
	&importCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Directory holding the ledger data (default $HOMELEDGER_DIR or .homeledger)")
var backendName = flag.String("backend", "", "Storage backend: file, sqlite or memory (default $HOMELEDGER_BACKEND or file)")
var verbose = flag.Bool("v", false, "Log degraded storage operations to stderr")

var envOnce sync.Once

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// OpenStore is the central function to open the ledger store. Configuration
// comes from flags, then environment variables (a .env file is honored), then
// defaults. The returned close function releases the backend.
func OpenStore() (*homeledger.Store, func() error, error) {
	envOnce.Do(func() {
		// a missing .env file is not an error, the environment still applies.
		godotenv.Load()
	})

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.ErrorLevel)
	}

	dir := firstOf(*dataDir, os.Getenv("HOMELEDGER_DIR"), ".homeledger")
	noop := func() error { return nil }

	switch name := firstOf(*backendName, os.Getenv("HOMELEDGER_BACKEND"), "file"); name {
	case "file":
		b, err := storage.NewFile(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open file backend: %w", err)
		}
		return homeledger.Open(b, logger), noop, nil
	case "sqlite":
		path := firstOf(os.Getenv("HOMELEDGER_SQLITE"), filepath.Join(dir, "homeledger.db"))
		b, err := storage.NewSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite backend: %w", err)
		}
		return homeledger.Open(b, logger), b.Close, nil
	case "memory":
		return homeledger.Open(storage.NewMemory(), logger), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q: want file, sqlite or memory", name)
	}
}
