package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizrun/internal/question"
	"quizrun/internal/questiondb"
)

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		from := flags.String("from", "", "Question file to import (csv, xlsx, yml, or json)")
		dbPath := flags.String("db", "", "DuckDB database file to write")
		table := flags.String("table", questiondb.DefaultTable, "Destination table")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *from == "" || *dbPath == "" {
			fmt.Fprintln(stderr, "both --from and --db are required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if isDuckDBPath(*from) {
			fmt.Fprintln(stderr, "--from must be a csv, xlsx, yml, or json file")
			return ExitUsage
		}

		ctx := context.Background()
		pairs, err := question.FileSource{Path: *from}.Load(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		if err := questiondb.Import(ctx, *dbPath, *table, pairs); err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Imported %d questions into %s (%s)\n", len(pairs), *dbPath, *table)
		return ExitOK
	}
}
