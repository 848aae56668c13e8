package cmd

import (
	"exam_prep_backend/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "exam-prep",
	Short: "Exam preparation practice backend",
	Long:  "HTTP backend serving daily practice question sets, the question bank and admin tooling.",
	// 不带子命令时直接启动服务
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "Directory containing config.yaml")
	rootCmd.Flags().Bool("migrate", false, "Run database migrations before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	return config.LoadConfig(dir)
}
