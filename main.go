package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/config"
	"clubhub-app/internal/logging"
	"clubhub-app/internal/store"
	"clubhub-app/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New("clubhub-api", cfg.LogLevel)
	if cfg.IsDev() {
		log.Logger.SetLevel(logrus.DebugLevel)
	}

	appStore, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer closeStore()

	var resolver assets.Resolver = assets.Passthrough{}
	if cfg.AssetMode == config.AssetsUpload {
		resolver = assets.UploadStub{BaseURL: cfg.AssetBaseURL}
	}

	server := web.NewServer(appStore, web.Options{
		Assets:         resolver,
		Locale:         cfg.DisplayLocale,
		Logger:         log,
		AllowedOrigins: cfg.Origins(),
	})
	handler := server.Routes()

	if cfg.InLambda() {
		log.WithField("store", cfg.StoreDriver).Info("starting in lambda mode")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "store": cfg.StoreDriver}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serve")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

// openStore picks the backend named by the config. SQL stores are seeded
// with the bundled dataset unless seeding is switched off.
func openStore(cfg *config.Config, log *logrus.Entry) (store.Store, func(), error) {
	var migrations fs.FS
	dir := ""
	if cfg.MigrationsDir != "" {
		migrations = os.DirFS(cfg.MigrationsDir)
		dir = "."
	}

	var sqlStore *store.SQLStore
	var err error
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		sqlStore, err = store.NewPostgresStore(cfg.PostgresDSN, store.PostgresOptions{
			MigrationsFS: migrations, MigrationsDir: dir, Logger: log,
		})
	case config.DriverSQLite:
		sqlStore, err = store.NewSQLiteStore(cfg.DBPath, store.SQLiteOptions{
			MigrationsFS: migrations, MigrationsDir: dir, Logger: log,
		})
	default:
		return store.NewStaticStore(), func() {}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.SeedSQLStore {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sqlStore.Seed(ctx, store.SeedDataset()); err != nil {
			_ = sqlStore.Close()
			return nil, nil, err
		}
	}
	return sqlStore, func() {
		if err := sqlStore.Close(); err != nil {
			log.WithError(err).Warn("close store")
		}
	}, nil
}
