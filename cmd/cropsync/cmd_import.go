package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/villageboy09/kiosk/pkg/importer"
)

var importFlags struct {
	dryRun bool
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Load reference content into the catalog tables",
	Long: `Import crops, stages, problems, stage links, advisories and remedy
components. <path> may be:

  content.xlsx     one sheet per table
  export.html      one <table id="<table>"> per table
  dir/             one <table>.csv per table

Rows upsert by id inside a single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlags.dryRun, "dry-run", false, "Parse the source and list its sheets without writing")
}

func runImport(cmd *cobra.Command, args []string) error {
	sheets, err := importer.Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if importFlags.dryRun {
		for _, sh := range sheets {
			fmt.Fprintf(out, "%-24s %d rows\n", sh.Name, len(sh.Rows))
		}
		return nil
	}

	_, log, db, err := bootstrap()
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}
	rep, err := importer.New(db, log).Import(cmd.Context(), sheets)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(rep.Rows))
	for name := range rep.Rows {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%-24s %d rows\n", name, rep.Rows[name])
	}
	for _, name := range rep.Skipped {
		fmt.Fprintf(out, "%-24s skipped\n", name)
	}
	return nil
}
