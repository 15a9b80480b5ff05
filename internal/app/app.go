package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"AfterpayEngine/config"
	httpctrl "AfterpayEngine/internal/controller/http"
	"AfterpayEngine/internal/controller/http/handlers"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/domain/payment"
	"AfterpayEngine/internal/external/afterpay"
	"AfterpayEngine/internal/external/kafka"
	"AfterpayEngine/internal/external/opensearch"
	order_repo "AfterpayEngine/internal/repo/order"
	product_repo "AfterpayEngine/internal/repo/product"
	"AfterpayEngine/internal/scheduler"
	"AfterpayEngine/internal/session"
	"AfterpayEngine/pkg/health"
	"AfterpayEngine/pkg/logger"
	"AfterpayEngine/pkg/metrics"
	"AfterpayEngine/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const (
	pluginProvider = "AfterpayEngine"
	pluginVersion  = "1.0.0"
)

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		logger.RequestLogger(),
		metrics.GinMiddleware(),
		gin.Recovery(),
	)
	return engine
}

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "text"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	orderRepo := order_repo.NewPgOrderRepo(pg)
	productRepo := product_repo.NewPgProductRepo(pg)
	orderService := order.NewService(orderRepo)

	sessions := session.NewStore()
	merchants := config.NewMerchantProvider(cfg)
	client := afterpay.New(&http.Client{Timeout: cfg.HTTPClientTimeout})

	transitionsPub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTransitionsTopic)
	defer transitionsPub.Close()
	cartPub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaCartRestoreTopic)
	defer cartPub.Close()
	transitions := kafka.NewTransitionBridge(transitionsPub)
	carts := kafka.NewCartBridge(cartPub)

	var sink payment.EventSink = payment.NopEventSink{}
	if len(cfg.OpensearchURLs) > 0 {
		osSink, err := opensearch.NewEventSink(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexPayments)
		if err != nil {
			slog.Warn("payment audit sink disabled", "error", err)
		} else {
			sink = osSink
		}
	}

	builder := payment.NewPayloadBuilder(productRepo, payment.ShopInfo{
		Provider:        pluginProvider,
		Version:         pluginVersion,
		Platform:        pluginProvider,
		PlatformVersion: pluginVersion,
	})
	paymentService := payment.NewService(orderRepo, client, merchants, sessions, transitions, carts, sink, builder)

	checkers := []health.Checker{health.NewPostgresChecker(pg.Pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	checks := health.NewRegistry(checkers...)

	engine := NewGinEngine()
	router := httpctrl.NewRouter(
		handlers.NewPaymentHandler(paymentService, orderService),
		handlers.NewCheckoutHandler(paymentService, sessions, merchants),
		handlers.NewAdminHandler(paymentService, orderService),
		checks,
	)
	router.SetUp(engine)

	StartWorkers(ctx, cfg, orderService)

	sweep := scheduler.NewSweep(paymentService, cfg.CaptureInterval)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sweep.Start(ctx)
	})
	g.Go(func() error {
		slog.Info("http server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fatal(fmt.Errorf("app - Run: %w", err))
	}
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
