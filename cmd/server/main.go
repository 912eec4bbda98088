package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/equipviz/internal/api"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store"
	"github.com/ougirez/equipviz/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	initConfig()

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer func() {
		_ = zl.Sync()
	}()

	ctx := context.Background()

	db, err := connectDB(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer db.Close()

	st := store.NewStore(xpgx.NewPool(db), store.RetentionPolicy{
		Keep: viper.GetInt(constants.ViperRetentionKeep),
	})

	apiService, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return apiService.Serve(viper.GetString(constants.ViperBindAddr))
	})
	eg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case <-egCtx.Done():
			return nil
		case <-sig:
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return apiService.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}

// connectDB поднимает пул и ждёт готовности базы с ретраями.
func connectDB(ctx context.Context) (*pgxpool.Pool, error) {
	var db *pgxpool.Pool

	err := backoff.Retry(
		func() error {
			var err error
			db, err = pgxpool.New(ctx, viper.GetString(constants.ViperDatabaseDSN))
			if err != nil {
				return err
			}
			if err = db.Ping(ctx); err != nil {
				db.Close()
				return err
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("equipviz")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperBindAddr, ":8080")
	viper.SetDefault(constants.ViperRetentionKeep, store.DefaultRetentionKeep)
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")

	_ = viper.ReadInConfig()
}
