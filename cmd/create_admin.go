package cmd

import (
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/pkg/database"
	"exam_prep_backend/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
)

// 超级管理员不能自助注册，只能由运维在命令行创建
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a SUPERADMIN account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger.InitLogger(cfg)

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return err
		}
		users := service.NewUserService(
			repository.NewUserRepository(db),
			repository.NewSubjectRepository(db),
			service.NewCache(nil),
		)

		admin, err := users.CreateAdmin(cmd.Context(), name, email, password)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created SUPERADMIN %s (id=%d)\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().String("email", "", "Admin email")
	createAdminCmd.Flags().String("password", "", "Admin password (min 6 characters)")
	createAdminCmd.Flags().String("name", "admin", "Display name")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")
}
