package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mission-stats/src/dates"
	"mission-stats/src/utils"
)

const defaultMaxDays = 366

// Prints the date window that the dashboard would chart.
//
//	window -anchor 2025-06-10 -days 3
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// -----------------------------------------------------------------------------

// run returns the process exit code: 0 on success, 2 on bad input.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("window", flag.ContinueOnError)
	fs.SetOutput(stderr)
	anchor := fs.String("anchor", "", "anchor date (YYYY-MM-DD or timestamp); empty means today in Seoul")
	days := fs.Int("days", 3, "number of days in the window")
	maxDays := fs.Int("max", defaultMaxDays, "largest accepted -days value")
	annotate := fs.Bool("annotate", false, "print weekday and business day for each date")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *days > *maxDays {
		fmt.Fprintf(stderr, "window: days must be at most %d, got %d\n", *maxDays, *days)
		return 2
	}

	window, err := dates.GenerateWindow(*anchor, *days)
	if err != nil {
		fmt.Fprintf(stderr, "window: %v\n", err)
		return 2
	}

	if !*annotate {
		fmt.Fprintln(stdout, strings.Join(window, ","))
		return 0
	}

	for _, day := range utils.SeoulCalendar().Annotate(window) {
		business := "holiday"
		if day.BusinessDay {
			business = "business"
		}
		fmt.Fprintf(stdout, "%s  %s  %-9s  %s\n", day.Date, day.Label, day.Weekday, business)
	}
	return 0
}
