package cmd

import (
	"exam_prep_backend/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Run database migrations before serving")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	migrate, _ := cmd.Flags().GetBool("migrate")

	application, err := app.NewApp(cfg, migrate)
	if err != nil {
		return err
	}
	return application.Run()
}
