package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydesktop/pytestgen/internal/analyzer"
	"github.com/pydesktop/pytestgen/internal/config"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project>",
	Short: "Analyze a Python project and print its GUI inventory",
	Long: `Analyzes a Python project (or a single .py file), detects the GUI
framework in use, and prints the discovered application classes, their
methods, and the UI elements created in their constructors. No files are
written.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	diag := diagnostics()
	projectPath := args[0]

	cfg, err := config.Discover(flagConfig, projectPath)
	if err != nil {
		return err
	}

	opts := []analyzer.Option{analyzer.WithDiagnostics(diag)}
	if len(cfg.Excludes) > 0 {
		opts = append(opts, analyzer.WithExcludes(cfg.Excludes))
	}
	a, err := analyzer.New(projectPath, opts...)
	if err != nil {
		return err
	}

	diag.Header("analyzing project")
	result, err := a.Analyze(cmd.Context())
	if err != nil {
		return err
	}

	diag.Summary("Analysis results", map[string]interface{}{
		"framework":   result.GUIFramework.String(),
		"modules":     len(result.Modules),
		"classes":     len(result.Classes),
		"functions":   len(result.Functions),
		"ui elements": len(result.UIElements),
	})

	classes := result.AppClasses()
	if len(classes) == 0 {
		diag.Warn("No application classes found")
		return nil
	}

	diag.PhaseHeader("Application classes")
	for _, class := range classes {
		diag.PhaseItem(fmt.Sprintf("%s (%s:%d)", class.Key(), class.FilePath, class.LineNumber))
		for _, element := range result.ElementsFor(class) {
			diag.List("%s: %s", element.Name, element.Type)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
