package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/gregor-consortium/triovcf/config"
	"github.com/gregor-consortium/triovcf/core"
	"github.com/gregor-consortium/triovcf/databases"
	"github.com/gregor-consortium/triovcf/databases/terra"
	"github.com/gregor-consortium/triovcf/report"
	"github.com/gregor-consortium/triovcf/trios"
)

// Prints usage info.
func usage(w io.Writer) int {
	fmt.Fprintf(w, "Usage: find-trio-vcfs HP:0001250\n")
	return 1
}

// Prints an error message and returns a failing exit status.
func fail(w io.Writer, format string, args ...any) int {
	fmt.Fprintf(w, format, args...)
	return 1
}

// Sets up the structured log, sending debug messages to the given writer if
// requested.
func initLogging(w io.Writer, debug bool) {
	logLevel := new(slog.LevelVar)
	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h).With("run", uuid.New().String()))
}

// Runs the search with the given command line, writing the report to stdout
// and progress to stderr. Returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {

	// The only argument is the HPO term.
	if len(args) < 2 {
		return usage(stdout)
	}
	termId := args[1]

	// Read settings from the environment and load the configuration.
	if err := config.ReadEnvironment(); err != nil {
		return fail(stderr, "Couldn't read environment: %s\n", err.Error())
	}
	initLogging(stderr, config.Env.Debug)
	slog.Debug(fmt.Sprintf("find-trio-vcfs %s", core.Version))
	b, err := config.ConfigData()
	if err != nil {
		return fail(stderr, "Couldn't read configuration data: %s\n", err.Error())
	}
	if err := config.Init(b); err != nil {
		return fail(stderr, "Couldn't initialize the configuration: %s\n", err.Error())
	}

	if !databases.HaveDatabase("terra") {
		if err := databases.RegisterDatabase("terra", terra.NewDatabase); err != nil {
			return fail(stderr, "%s\n", err.Error())
		}
	}
	db, err := databases.NewDatabase("terra")
	if err != nil {
		return fail(stderr, "Couldn't create the Terra database: %s\n", err.Error())
	}

	fmt.Fprintf(stderr, "Looking for trios with %s...\n", termId)
	rows := trios.NewFinder(db).Find(termId)

	report.Sort(rows)
	if err := report.Write(stdout, rows); err != nil {
		return fail(stderr, "Couldn't write report: %s\n", err.Error())
	}

	fmt.Fprintf(stderr, "\n%s\n", report.Summarize(rows).String())
	slog.Debug(fmt.Sprintf("Finished in %.2f s", core.Uptime()))
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
