// Package cmd implements the CLI application to manage the treasury
// dataset and its chart.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hodlwatch/treasury"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "data")
	c.Register(&fmtCmd{}, "data")
	c.Register(&fetchCmd{}, "data")

	c.Register(&renderCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "data.json", "Path to the canonical data file (JSON array of monthly records)")

// loadHistory reads the canonical data file behind the shared -data flag.
func loadHistory() (*treasury.History, error) {
	return treasury.LoadHistory(*dataFile)
}

// printMarkdown renders markdown for the terminal. When the terminal
// cannot be styled the raw markdown is still perfectly readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error on the error stream and returns the failure
// status, the single exit path for all command errors.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
