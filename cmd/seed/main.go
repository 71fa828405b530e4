package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muhammadheryan/rare-treasures/cmd/config"
	"github.com/muhammadheryan/rare-treasures/cmd/database"
	"github.com/muhammadheryan/rare-treasures/db"
	"github.com/muhammadheryan/rare-treasures/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newSeedCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newSeedCommand() *cobra.Command {
	var (
		env   string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load a fixed data set",
		Long: `Run the schema migrations and replace the contents of the shops and
treasures tables with the data set of the chosen environment.

The environment defaults to "test" when TESTING=test and "dev" otherwise,
and selects the matching .env.<environment> file for connection settings.`,
		Example: `  # Seed the development database
  seed

  # Seed the test database from scratch
  seed --env test --reset`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), env, reset)
		},
	}

	cmd.Flags().StringVar(&env, "env", db.EnvironmentFromTesting(os.Getenv("TESTING")), "data set to load (dev or test)")
	cmd.Flags().BoolVar(&reset, "reset", false, "roll back every migration before applying them")

	return cmd
}

func runSeed(ctx context.Context, env string, reset bool) error {
	if env != db.EnvDev && env != db.EnvTest {
		return fmt.Errorf("unknown environment %q", env)
	}

	cfg, err := config.LoadFrom(".env." + env)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Environment); err != nil {
		return err
	}
	defer logger.Close()

	conn, err := database.New(ctx, cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer conn.Close()

	if err := db.Seed(ctx, conn, env, reset); err != nil {
		logger.Error("err seed db", zap.String("env", env), zap.Error(err))
		return err
	}

	logger.Info("database seeded", zap.String("env", env), zap.String("database", cfg.Database.Name))
	return nil
}
