package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SirTuppy/route-setter-scheduler/internal/app"
	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type adminApp struct {
	cfg    *config.Config
	infra  *app.Infra
	logger *zap.Logger
	ctx    context.Context
}

var (
	configPath string
	admin      *adminApp
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator tasks for the route setting scheduler",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if admin == nil {
				return
			}
			if admin.infra != nil {
				admin.infra.Close()
			}
			_ = admin.logger.Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to scheduler.yaml (defaults to SCHEDULER_CONFIG, then ./scheduler.yaml)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initApp() error {
	_ = godotenv.Load()
	if configPath != "" {
		if err := os.Setenv("SCHEDULER_CONFIG", configPath); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Env)
	zap.ReplaceGlobals(logger)

	infra, err := app.Connect(cfg, false)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	admin = &adminApp{
		cfg:    cfg,
		infra:  infra,
		logger: logger,
		ctx:    context.Background(),
	}
	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(admin.ctx, admin.infra.GormDB); err != nil {
				return err
			}
			fmt.Println("✓ schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the gyms and walls listed in scheduler.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := admin.infra.SQLDB.BeginTx(admin.ctx, nil)
			if err != nil {
				return err
			}
			defer tx.Rollback()

			repo := gym.NewRepository(admin.infra.GormDB).WithTx(tx)
			res, err := app.SeedCatalog(admin.ctx, repo, admin.cfg.Scheduler.Gyms)
			if err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}

			fmt.Printf("✓ seeded %d gyms and %d walls\n", res.Gyms, res.Walls)
			for _, h := range admin.cfg.Scheduler.Holidays {
				fmt.Printf("  holiday %s  %s\n", h.Date, h.Name)
			}
			return nil
		},
	}
}
