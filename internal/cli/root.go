// Package cli wires the analyzer, generator, report store, and dashboard into
// the pytestgen command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pydesktop/pytestgen/internal/utils"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pytestgen",
	Short: "Generate pytest suites for Python desktop GUI applications",
	Long: `pytestgen statically analyzes a Python desktop GUI project (Tkinter,
PyQt5, PySide2, wxPython, or Kivy), identifies application classes and the
widgets they create, and generates a ready-to-run pytest suite for them.

The target project is parsed, never imported or executed, so analysis is safe
to run against code with missing dependencies or import-time side effects.`,
	SilenceUsage: true,
}

// Execute runs the command tree. Called by main; cobra prints the error, we
// just exit non-zero.
func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{printf "pytestgen version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default is <project>/.pytestgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress all output except errors")
}

// diagnostics builds the diagnostic sink from the global verbosity flags.
// Quiet wins over verbose when both are set.
func diagnostics() *utils.DiagnosticSystem {
	if flagQuiet {
		return utils.NewQuietDiagnostics()
	}
	if flagVerbose {
		return utils.NewVerboseDiagnostics()
	}
	return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
}
