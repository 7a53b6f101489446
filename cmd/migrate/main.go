// Command migrate moves the legacy startup-scoped investor pipeline
// (STARTUP_INVESTORS) onto projects (PROJECT_INVESTORS). It is safe to run
// repeatedly.
package main

import (
	"fmt"
	"os"

	"dealflow-backend/internal/config"
	"dealflow-backend/internal/database"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/migration"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagDryRun     bool
	flagReportFile string
	flagEnvFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate STARTUP_INVESTORS to PROJECT_INVESTORS",
	Long: `Creates a "Default Project" for every startup without projects, then copies
each legacy startup pipeline link onto its startup's first project, mapping
legacy stage labels onto the canonical pipeline stages.

Links whose (project, investor) pair already exists are skipped, so a second
run writes nothing.`,
	SilenceUsage: true,
	RunE:         runMigrate,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "compute the report without writing to the spreadsheet")
	rootCmd.Flags().StringVar(&flagReportFile, "report-file", "", "write the report as YAML to this path")
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "environment file to load before reading configuration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(flagEnvFile); err != nil {
		logrus.WithField("env_file", flagEnvFile).Info("No env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	ctx := cmd.Context()
	store, err := database.Initialize(ctx, &database.Options{
		Backend:             cfg.SheetsBackend,
		SpreadsheetID:       cfg.SpreadsheetID,
		ServiceAccountEmail: cfg.ServiceAccountEmail,
		PrivateKey:          cfg.ServiceAccountPrivateKey,
	})
	if err != nil {
		return err
	}

	report, err := migration.New(store).Run(ctx, migration.Options{DryRun: flagDryRun})
	if err != nil {
		if report != nil {
			logrus.WithFields(logrus.Fields{
				"projects_planned": report.ProjectsCreated,
				"links_planned":    report.LinksMigrated,
			}).Error("Migration stopped during writes")
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"dry_run":            report.DryRun,
		"startups_scanned":   report.StartupsScanned,
		"projects_created":   report.ProjectsCreated,
		"links_migrated":     report.LinksMigrated,
		"skipped_duplicates": report.SkippedDuplicates,
		"skipped_unresolved": report.SkippedUnresolved,
		"stage_issues":       len(report.Notes),
	}).Info("Migration complete")
	for _, note := range report.Notes {
		logrus.Warn(note)
	}

	if flagReportFile == "" {
		return nil
	}
	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(flagReportFile, out, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logrus.WithField("path", flagReportFile).Info("Report written")
	return nil
}
