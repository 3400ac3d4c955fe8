package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pydesktop/pytestgen/internal/analyzer"
	"github.com/pydesktop/pytestgen/internal/config"
	"github.com/pydesktop/pytestgen/internal/generator"
	"github.com/pydesktop/pytestgen/internal/models"
)

var flagOutput string

var generateCmd = &cobra.Command{
	Use:   "generate <project>",
	Short: "Analyze a project and generate its pytest suite",
	Long: `Analyzes a Python project and writes a pytest suite for the detected
application classes: a conftest.py with instance fixtures plus one test file
per class. Existing generated files are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	diag.Header("generating tests")
	result, err := a.Analyze(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.Framework != "" {
		framework, err := models.ParseFramework(cfg.Framework)
		if err != nil {
			return err
		}
		diag.Info("Framework override: %s", framework)
		result.GUIFramework = framework
	}

	if !result.GUIFramework.Detected() {
		diag.Warn("No GUI framework detected; generated tests will be skeletal")
	}
	if len(result.AppClasses()) == 0 {
		diag.Warn("No application classes found")
	}

	outputDir := flagOutput
	if outputDir == "" {
		outputDir = config.ResolveDir(cfg.OutputDir, result.ProjectPath)
	}

	g := generator.New(result, generator.WithDiagnostics(diag))
	testFiles, err := g.GenerateTests(outputDir)
	if err != nil {
		return err
	}

	diag.PhaseHeader("Generated files")
	for _, path := range testFiles.Paths() {
		diag.PhaseItem(filepath.Base(path))
	}
	diag.Success("Test suite written to %s", outputDir)
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory for generated tests (default <project>/tests)")
}
