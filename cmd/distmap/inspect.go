package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packdist/distmap/internal/exports"
	"github.com/packdist/distmap/internal/manifest"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "List the files a package's exports declaration resolves to",
	Long: `Inspect reads an existing package.json and flattens its exports
declaration into the list of referenced files, each tagged with the module
system (esm or cjs) a consumer would resolve it as.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Emit JSON instead of plain text")
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	pkg, err := manifest.NewLoader().Load(dir)
	if err != nil {
		return err
	}

	files := exports.ExtractExportFilenames(pkg.Exports)

	if inspectJSON {
		data, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(files) == 0 {
		cmd.Println("no exports declared")
		return nil
	}
	for _, f := range files {
		cmd.Println(fmt.Sprintf("%-4s %s", f.Type, f.File))
	}
	return nil
}
