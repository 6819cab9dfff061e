package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"homeledger"
)

// settingsCmd shows or updates the user preferences.
type settingsCmd struct {
	currency      string
	dateFormat    string
	theme         string
	language      string
	notifications string
	backup        string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change user preferences" }
func (*settingsCmd) Usage() string {
	return `hl settings [-currency <code>] [-date-format <layout>] [-theme <theme>] [-lang <code>] [-notifications <bool>] [-backup <bool>]

  Without flags, prints the current settings. Each flag given replaces that
  preference.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency code, e.g. USD or EUR.")
	f.StringVar(&c.dateFormat, "date-format", "", "Display date format, e.g. MM/dd/yyyy.")
	f.StringVar(&c.theme, "theme", "", "Color theme: system, light or dark.")
	f.StringVar(&c.language, "lang", "", "Language code, e.g. en.")
	f.StringVar(&c.notifications, "notifications", "", "Enable notifications: true or false.")
	f.StringVar(&c.backup, "backup", "", "Enable backups: true or false.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	settings := s.Settings()
	changed := false

	if c.currency != "" {
		settings.Currency = c.currency
		changed = true
	}
	if c.dateFormat != "" {
		settings.DateFormat = c.dateFormat
		changed = true
	}
	if c.theme != "" {
		theme, err := homeledger.ParseTheme(c.theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing theme: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.Theme = theme
		changed = true
	}
	if c.language != "" {
		settings.Language = c.language
		changed = true
	}
	if c.notifications != "" {
		v, err := strconv.ParseBool(c.notifications)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -notifications: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.Notifications = v
		changed = true
	}
	if c.backup != "" {
		v, err := strconv.ParseBool(c.backup)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -backup: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.BackupEnabled = v
		changed = true
	}

	if changed {
		if err := s.SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("currency:      %s\n", settings.Currency)
	fmt.Printf("dateFormat:    %s\n", settings.DateFormat)
	fmt.Printf("theme:         %s\n", settings.Theme)
	fmt.Printf("language:      %s\n", settings.Language)
	fmt.Printf("notifications: %t\n", settings.Notifications)
	fmt.Printf("backup:        %t\n", settings.BackupEnabled)
	return subcommands.ExitSuccess
}
