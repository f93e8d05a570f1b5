package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	pricingv1 "github.com/wyfcoding/priceservice/goapi/pricing/v1"
	"github.com/wyfcoding/priceservice/internal/pricing/application"
	"github.com/wyfcoding/priceservice/internal/pricing/infrastructure/messaging"
	"github.com/wyfcoding/priceservice/internal/pricing/infrastructure/persistence/mysql"
	grpciface "github.com/wyfcoding/priceservice/internal/pricing/interfaces/grpc"
	httpiface "github.com/wyfcoding/priceservice/internal/pricing/interfaces/http"
	"github.com/wyfcoding/priceservice/pkg/config"
	"github.com/wyfcoding/priceservice/pkg/db"
	"github.com/wyfcoding/priceservice/pkg/logger"
	"github.com/wyfcoding/priceservice/pkg/metrics"
	"github.com/wyfcoding/priceservice/pkg/middleware"
	"github.com/wyfcoding/priceservice/pkg/mq"
)

func main() {
	configPath := flag.String("config", "configs/priceservice/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Service starting",
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	)

	m := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		go m.ExposeHTTP(cfg.Metrics.Port)
	}

	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		logger.Error(ctx, "Failed to init database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// 非生产环境自动建表
	if cfg.Environment != "prod" {
		if err := database.AutoMigrate(&mysql.PriceModel{}, &mysql.OrderBookModel{}, &mysql.OrderModel{}); err != nil {
			logger.Error(ctx, "Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	producer, err := mq.NewProducer(mq.KafkaConfig{
		Brokers:      cfg.Kafka.Brokers,
		MaxRetries:   cfg.Kafka.MaxRetries,
		RetryBackoff: cfg.Kafka.RetryBackoff,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create kafka producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	repo := mysql.NewPriceRepository(database.DB)
	jsonPublisher := messaging.NewJSONPricePublisher(producer, cfg.Kafka.PriceTopic, m)
	protoPublisher := messaging.NewProtoPricePublisher(producer, cfg.Kafka.ProtoPriceTopic, m)
	service := application.NewPriceService(repo, jsonPublisher, protoPublisher)

	// HTTP
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.GinRecoveryMiddleware(),
		middleware.GinLoggingMiddleware(),
		middleware.GinMetricsMiddleware(m),
	)
	httpiface.NewPriceHandler(service).RegisterRoutes(router, gin.Accounts{
		cfg.Auth.AdminUsername: cfg.Auth.AdminPassword,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// gRPC
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.GRPCRecoveryInterceptor(),
			middleware.GRPCMetricsInterceptor(m),
			grpciface.AuthUnaryInterceptor(cfg.Auth.GRPCToken),
		),
		grpc.ChainStreamInterceptor(
			middleware.GRPCStreamRecoveryInterceptor(),
			grpciface.AuthStreamInterceptor(cfg.Auth.GRPCToken),
		),
	)
	pricingv1.RegisterPriceServiceServer(grpcServer, grpciface.NewPriceServer(service))

	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Error(ctx, "Failed to listen for gRPC", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		logger.Info(gCtx, "HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info(gCtx, "gRPC server starting", "addr", grpcAddr)
		return grpcServer.Serve(grpcListener)
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info(ctx, "Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Service exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Service stopped")
}
