package caltrack

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/app"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/auth"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/db"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/service"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/store"
)

// resolveConfig applies persistent flags on top of file and environment
// configuration.
func resolveConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return app.Config{}, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if storeKind != "" {
		cfg.Store = app.NormalizeStore(storeKind)
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cfg.DBPath == "" {
		p, err := app.DefaultDBPath()
		if err != nil {
			return app.Config{}, err
		}
		cfg.DBPath = p
	}
	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg app.Config) *logrus.Logger {
	return app.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
}

func withDB(run func(*sql.DB) error) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	return openDB(cfg, run)
}

func openDB(cfg app.Config, run func(*sql.DB) error) error {
	if err := app.EnsureDBDir(cfg.DBPath); err != nil {
		return err
	}
	sqldb, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withSession opens the signed-in user's document and hands it to run.
func withSession(cmd *cobra.Command, run func(context.Context, *sql.DB, *service.Session) error) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd, cfg)
	return openDB(cfg, func(sqldb *sql.DB) error {
		account, err := auth.NewProvider(sqldb).Current(ctx)
		if err != nil {
			return err
		}
		st, closeStore, err := openStore(ctx, cfg, sqldb)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := service.OpenSession(ctx, st, account.ID, logger)
		if s == nil {
			return err
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		return run(ctx, sqldb, s)
	})
}

func openStore(ctx context.Context, cfg app.Config, sqldb *sql.DB) (store.DocumentStore, func(), error) {
	if cfg.Store != app.StoreRedis {
		return store.NewSQLiteStore(sqldb), func() {}, nil
	}
	rs, err := store.NewRedisStore(store.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := rs.Ping(ctx); err != nil {
		_ = rs.Close()
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}
