package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/RoshanShah43/rs-bazar/configs"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/cache"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/catalog"
	httpadapter "github.com/RoshanShah43/rs-bazar/internal/adapter/http"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/http/middleware"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/orders"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/repo"
	"github.com/RoshanShah43/rs-bazar/internal/logging"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the storefront: snapshot store per config, upstream
// catalog and order clients, the sessions registry and the HTTP surface.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init("storefront", cfg.App.LogFile)
	logger.Info("storefront: starting up")

	var (
		snaps   usecase.CartSnapshots
		cleanup = func() {}
	)

	switch cfg.Cart.Store {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		snaps = repo.NewMySQLCartSnapshots(db)
		cleanup = func() { _ = db.Close() }

	default: // redis
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}

		snaps = cache.NewRedisCartSnapshots(rdb, cfg.Cart.TTL)
		cleanup = func() { _ = rdb.Close() }
	}

	cat := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, cfg.Catalog.Refresh, logging.New("catalog"))
	submitter := orders.NewClient(cfg.Orders.BaseURL, cfg.Orders.Token, cfg.Orders.Timeout)
	sessions := usecase.NewSessions(cat, snaps, submitter, cfg.Cart.SessionIdle, logging.New("checkout"))

	router := httpadapter.NewRouter(
		httpadapter.NewCartHandler(sessions),
		httpadapter.NewCheckoutHandler(sessions),
		middleware.NewSession(cfg),
	)

	return &App{Router: router}, cleanup, nil
}

// Run serves the API with the configured timeouts.
func (a *App) Run(cfg configs.Config) error {
	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      a.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return srv.ListenAndServe()
}
