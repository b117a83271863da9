package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"tictactoe/internal/config"
	"tictactoe/internal/server"
	"tictactoe/internal/store"
)

func runServe(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sessions := store.NewSessionStore(conf.Sessions.Shards)
	gameServer := server.NewGameServer(sessions, server.NewMetrics(reg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go gameServer.RunJanitor(ctx, conf.Sessions.Sweep, conf.Sessions.TTL)

	// Create gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryLogger(logger)))
	server.RegisterGameServiceServer(grpcServer, gameServer)

	// Register reflection service for tools like grpcurl
	reflection.Register(grpcServer)

	grpcListener, err := net.Listen("tcp", conf.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", conf.GRPCAddr, err)
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info().Str("addr", conf.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(grpcListener); err != nil {
			errCh <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()

	gwMux, err := server.NewGateway(gameServer, logger)
	if err != nil {
		return fmt.Errorf("failed to register gateway: %w", err)
	}

	httpServer := &http.Server{
		Addr:    conf.HTTPAddr,
		Handler: server.NewHTTPHandler(gwMux, reg),
	}

	go func() {
		logger.Info().Str("addr", conf.HTTPAddr).Msg("HTTP/REST server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	// Handle graceful shutdown
	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error().Err(err).Msg("server failed")
	}

	logger.Info().Msg("shutting down servers")
	stop()
	if shutdownErr := httpServer.Shutdown(context.Background()); shutdownErr != nil {
		logger.Warn().Err(shutdownErr).Msg("HTTP shutdown")
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("servers stopped")

	return err
}

// loadConfig reads the config and applies flag overrides
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		conf.LogLevel = logLevel
	}
	if grpcAddr != "" {
		conf.GRPCAddr = grpcAddr
	}
	if httpAddr != "" {
		conf.HTTPAddr = httpAddr
	}
	return conf, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
