// Command unitconv is an interactive unit converter. It prompts for a
// magnitude and a pair of units, prints the converted value, and compares
// consecutive entries using the quantity comparison rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-measure/cli"
	"github.com/amp-labs/amp-measure/logger"
	"github.com/amp-labs/amp-measure/quantity"
	"github.com/amp-labs/amp-measure/units"
)

func main() {
	tablePath := flag.String("table", "", "path to a YAML conversion table (default: built-in mass table)")
	logJSON := flag.Bool("json", false, "log in JSON format")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	ctx := context.Background()

	minLevel := slog.LevelInfo
	if *verbose {
		minLevel = slog.LevelDebug
	}

	log := logger.ConfigureLogging(
		logger.WithJSON(*logJSON),
		logger.WithMinLevel(minLevel),
		logger.WithOutput(os.Stderr),
	)

	if *tablePath != "" {
		table, err := units.LoadTableFile(ctx, *tablePath)
		if err != nil {
			log.Error("failed to load conversion table", "error", err)
			os.Exit(1)
		}

		units.SetDefault(table)
	}

	if err := run(ctx, log); err != nil {
		log.Error("unitconv failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	table := units.Default()
	names := table.Units()

	var previous *quantity.Quantity

	for {
		from, err := cli.Select("Source unit", names...)
		if err != nil {
			return err
		}

		magnitude, err := cli.PromptFloat("Magnitude")
		if err != nil {
			return err
		}

		to, err := cli.Select("Target unit", names...)
		if err != nil {
			return err
		}

		q, err := quantity.New(magnitude, units.Unit(from))
		if err != nil {
			return err
		}

		converted, err := q.Convert(units.Unit(to))
		if err != nil {
			// A missing conversion path is a property of the table, not a
			// reason to quit the session.
			log.Warn("cannot convert", "error", err)

			continue
		}

		fmt.Printf("%s = %d %s\n", q, converted, to)

		if previous != nil {
			fmt.Printf("  vs previous %s: %s\n", previous, describe(q, *previous))
		}

		previous = &q

		log.Debug("converted", "from", from, "to", to,
			"magnitude", magnitude, "result", converted)

		again, err := cli.PromptConfirm("Convert another")
		if err != nil || !again {
			return err
		}
	}
}

// describe renders the comparison of a against b in words.
func describe(a, b quantity.Quantity) string {
	switch {
	case a.Equals(b):
		return "equal (same rounded canonical value)"
	case a.LessThan(b):
		return "less"
	default:
		return "greater"
	}
}
