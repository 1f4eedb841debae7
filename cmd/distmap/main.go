package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/packdist/distmap/internal/app"
	"github.com/packdist/distmap/internal/config"
	"github.com/packdist/distmap/internal/domain"
	"github.com/packdist/distmap/internal/utils"
	"github.com/packdist/distmap/pkg/version"
)

var (
	cfgFile   string
	verbose   bool
	workspace bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "distmap [dir]...",
	Short: "Generate the exports field of package.json from build outputs",
	Long: `distmap infers the publish-time exports map of a package from the files
its bundler produced. It reads a build report when the pipeline emits one,
scans the output directory otherwise, and merges the inferred conditional
exports (import/require/types) back into package.json.

Bundling itself is out of scope: run distmap after your build completes.`,
	Version: version.Short(),
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.ConfigFilePath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().StringP("out-dir", "o", config.DefaultOutDir, "Build output directory name")
	rootCmd.Flags().Bool("no-exports", false, "Disable exports generation (leaves package.json untouched)")
	rootCmd.Flags().StringSlice("folders", nil, "Only export entries under these top-level folders")
	rootCmd.Flags().IntP("workers", "j", config.DefaultWorkers, "Number of concurrent workers")
	rootCmd.Flags().Bool("dry-run", false, "Simulate without writing files")
	rootCmd.Flags().Bool("backup", false, "Keep a package.json.bak of the previous manifest")
	rootCmd.Flags().String("report", "", "Build report filename inside each package directory")
	rootCmd.Flags().StringSlice("chunk-pattern", nil, "Regex patterns marking scanned files as chunks")
	rootCmd.Flags().BoolVarP(&workspace, "workspace", "w", false, "Treat arguments as workspace roots and discover packages")

	_ = viper.BindPFlag("output.out_dir", rootCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("output.backup", rootCmd.Flags().Lookup("backup"))
	_ = viper.BindPFlag("exports.folders", rootCmd.Flags().Lookup("folders"))
	_ = viper.BindPFlag("concurrency.workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("scan.report_file", rootCmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("scan.chunk_patterns", rootCmd.Flags().Lookup("chunk-pattern"))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// --no-exports inverts into the config so file/env settings still apply
	if noExports, _ := cmd.Flags().GetBool("no-exports"); noExports {
		cfg.Exports.Enabled = false
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	utils.SetGlobalLevel(logLevel)
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	orch, err := app.New(app.Options{
		CommonOptions: domain.CommonOptions{
			Verbose: verbose,
			DryRun:  cfg.Output.DryRun,
			Backup:  cfg.Output.Backup,
		},
		Config:      cfg,
		Logger:      log,
		SkipMissing: workspace,
		Progress:    workspace,
	})
	if err != nil {
		return err
	}

	dirs, err := resolveDirs(orch, args)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no packages found")
	}

	results, err := orch.Run(cmd.Context(), dirs)
	if err != nil {
		return err
	}

	for _, res := range results {
		printResult(cmd, res, cfg.Output.DryRun)
	}
	return nil
}

// resolveDirs turns CLI arguments into package directories. Without
// --workspace the arguments are the package dirs themselves.
func resolveDirs(orch *app.Orchestrator, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	if !workspace {
		return args, nil
	}

	var dirs []string
	for _, root := range args {
		found, err := orch.DiscoverPackages(utils.ExpandPath(root))
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, found...)
	}
	return dirs, nil
}

func printResult(cmd *cobra.Command, res domain.PackageResult, dryRun bool) {
	name := res.Name
	if name == "" {
		name = res.Dir
	}
	switch {
	case res.Written:
		cmd.Printf("%s: %d exports from %d build outputs\n", name, res.ExportCount, res.EntryCount)
	case dryRun && res.ExportCount > 0:
		cmd.Printf("%s: %d exports from %d build outputs (dry run)\n", name, res.ExportCount, res.EntryCount)
	default:
		cmd.Printf("%s: no exports generated\n", name)
	}
}
