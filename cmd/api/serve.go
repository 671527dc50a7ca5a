package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/slot-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/slot-booking/internal/db"
	"github.com/BruksfildServices01/slot-booking/internal/integrations/profile"
	"github.com/BruksfildServices01/slot-booking/internal/metrics"
	"github.com/BruksfildServices01/slot-booking/internal/notify"
	"github.com/BruksfildServices01/slot-booking/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load loadFunc) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if migrate {
				if err := dbpkg.Migrate(db); err != nil {
					return err
				}
			}

			deps := routes.Deps{
				DB:     db,
				Config: cfg,
				Log:    log,
			}

			if cfg.MetricsEnabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				deps.Metrics = metrics.New(reg)
				deps.Gatherer = reg
			}

			queue, err := openQueue(ctx, cfg, log)
			if err != nil {
				return err
			}
			events := notify.NewDispatcher(queue, log, deps.Metrics, cfg.NotifyBuffer)
			defer func() {
				if err := events.Close(); err != nil {
					log.WithError(err).Warn("closing notification queue")
				}
			}()
			deps.Events = events

			if cfg.ProfileServiceURL != "" {
				deps.Profiles = profile.NewClient(cfg.ProfileServiceURL, cfg.ProfileTimeout)
			}

			r := gin.Default()
			routes.RegisterRoutes(r, deps)

			return run(ctx, log, cfg.Addr(), r)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "run database migrations on startup")
	return cmd
}

func openQueue(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (notify.Queue, error) {
	switch cfg.QueueDriver {
	case "redis":
		client, err := notify.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return notify.NewRedisQueue(client, cfg.RedisPrefix), nil
	case "amqp":
		return notify.NewAMQPQueue(cfg.AMQPURL, cfg.AMQPExchange)
	case "log":
		return notify.NewLogQueue(log), nil
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.QueueDriver)
	}
}

func run(ctx context.Context, log logrus.FieldLogger, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
