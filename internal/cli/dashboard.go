package cli

import (
	"github.com/spf13/cobra"

	"github.com/pydesktop/pytestgen/internal/config"
	"github.com/pydesktop/pytestgen/internal/dashboard"
)

var (
	flagReportDir string
	flagPort      int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve a web dashboard over saved test reports",
	Long: `Starts a local web server that lists saved test reports and lets you
inspect individual runs. The report directory is read-only to the server; if
the requested port is taken the next free port is used.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	diag := diagnostics()

	cfg, err := config.Discover(flagConfig, ".")
	if err != nil {
		return err
	}

	reportDir := flagReportDir
	if reportDir == "" {
		reportDir = cfg.ReportDir
	}
	port := flagPort
	if port == 0 {
		port = cfg.DashboardPort
	}

	server := dashboard.New(reportDir, dashboard.WithDiagnostics(diag))
	return server.Run(port)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&flagReportDir, "report-dir", "", "directory containing test report JSON files (default test_reports)")
	dashboardCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "preferred dashboard port (default 8080)")
}
