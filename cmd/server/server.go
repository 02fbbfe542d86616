package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/combat-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
	"github.com/KirkDiggler/combat-api/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-api/internal/repositories/weapons"
)

var (
	grpcPort  int
	redisAddr string
	diceSeed  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the combat API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for encounter storage")
	serverCmd.Flags().StringVar(&diceSeed, "dice-seed", "", "seed for the dice roller; empty uses an unpredictable seed")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	service, err := buildCombatService()
	if err != nil {
		return fmt.Errorf("failed to build combat service: %w", err)
	}
	// The proto surface for the combat service is not generated yet; the
	// orchestrator is wired and reachable once the handler package lands.
	// TODO: register the combat gRPC handler backed by service
	_ = service

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if serveErr := srv.Serve(lis); serveErr != nil {
			errChan <- fmt.Errorf("failed to serve: %w", serveErr)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildCombatService wires storage, dice, and the event bus into the combat
// orchestrator.
func buildCombatService() (combat.Service, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	clk := clock.New()

	encounterRepo, err := encounters.NewRedisRepository(&encounters.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter repository: %w", err)
	}

	weaponRepo, err := weapons.NewRedisRepository(&weapons.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weapon repository: %w", err)
	}

	seed := diceSeed
	if seed == "" {
		seed = idgen.NewUUID("").Generate()
	}

	return combat.NewOrchestrator(&combat.Config{
		EncounterRepo: encounterRepo,
		WeaponRepo:    weaponRepo,
		IDGenerator:   idgen.NewUUID(""),
		Clock:         clk,
		Roller:        dice.NewSeeded(seed),
		EventBus:      events.NewBus(),
	})
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	switch level {
	case grpc_logging.LevelDebug:
		slog.DebugContext(ctx, msg, fields...)
	case grpc_logging.LevelWarn:
		slog.WarnContext(ctx, msg, fields...)
	case grpc_logging.LevelError:
		slog.ErrorContext(ctx, msg, fields...)
	default:
		slog.InfoContext(ctx, msg, fields...)
	}
}
