package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
	"github.com/KirkDiggler/rpg-inventory/internal/handlers/ws"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-inventory/internal/redis"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
)

const (
	storageRedis  = "redis"
	storageMemory = "memory"

	shutdownTimeout = 30 * time.Second
)

var (
	grpcPort           int
	wsPort             int
	storage            string
	redisAddr          string
	redisPassword      string
	redisDB            int
	capacity           int
	catalogPath        string
	inventorySaveID    string
	defaultGameID      string
	autosaveSchedule   string
	grantStartingItems bool
	logLevel           string
	logFormat          string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the inventory server",
	Long: `Start the gRPC inventory service and the websocket change feed. The session is
loaded from the default save slot on start and saved again on shutdown.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&wsPort, "ws-port", 8080, "websocket change feed port, 0 disables it")
	serverCmd.Flags().StringVar(&storage, "storage", storageRedis, "game save storage: redis or memory")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	serverCmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database")
	serverCmd.Flags().IntVar(&capacity, "capacity", 24, "number of inventory slots")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "item catalog file (.yaml or .json), embedded table when empty")
	serverCmd.Flags().StringVar(&inventorySaveID, "save-id", "player_inventory", "key of the inventory inside game saves")
	serverCmd.Flags().StringVar(&defaultGameID, "game-id", "default", "save slot used on start, shutdown and autosave")
	serverCmd.Flags().StringVar(&autosaveSchedule, "autosave", "@every 5m", "autosave cron schedule, empty disables autosave")
	serverCmd.Flags().BoolVar(&grantStartingItems, "grant-starting-items", true, "grant starting items when no save exists")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	serverCmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	repo, closeRepo, err := newRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	manager, err := inv.New(&inv.Config{
		Capacity:      capacity,
		Catalog:       cat,
		SaveID:        inventorySaveID,
		Location:      entities.LocationPlayer,
		EntityRemover: &worldRemover{},
		IDGenerator:   idgen.NewUUID("watch"),
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory: %w", err)
	}

	saves, err := savegame.New(&savegame.Config{Repository: repo})
	if err != nil {
		return fmt.Errorf("failed to create save manager: %w", err)
	}
	if err := saves.Register(manager); err != nil {
		return fmt.Errorf("failed to register inventory for saving: %w", err)
	}

	svc, err := inventory.NewOrchestrator(&inventory.Config{
		Manager:            manager,
		Catalog:            cat,
		Saves:              saves,
		DefaultGameID:      defaultGameID,
		GrantStartingItems: grantStartingItems,
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory service: %w", err)
	}

	initOut, err := svc.Initialize(ctx, &inventory.InitializeInput{})
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	slog.Info("session initialized",
		"game_id", defaultGameID,
		"loaded", initOut.Loaded,
		"starting_items", initOut.StartingItems,
		"capacity", initOut.Inventory.Capacity,
		"catalog_items", cat.Len())

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

	inventoryHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		InventoryService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory handler: %w", err)
	}
	v1alpha1.RegisterInventoryServiceServer(srv, inventoryHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var httpSrv *http.Server
	if wsPort != 0 {
		feed, err := ws.NewHandler(&ws.HandlerConfig{InventoryService: svc})
		if err != nil {
			return fmt.Errorf("failed to create websocket handler: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/ws", feed)

		httpSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", wsPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("websocket feed starting", "port", wsPort, "path", "/ws")
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve websocket feed: %w", err)
			}
		}()
	}

	var autosaver *savegame.Autosaver
	if autosaveSchedule != "" {
		autosaver, err = savegame.NewAutosaver(&savegame.AutosaverConfig{
			Schedule: autosaveSchedule,
			Save:     svc.Autosave,
		})
		if err != nil {
			return fmt.Errorf("failed to create autosaver: %w", err)
		}
		autosaver.Start()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case serveErr = <-errChan:
		slog.Error("server failed", "error", serveErr)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()
	if autosaver != nil {
		autosaver.Stop(shutdownCtx)
	}
	if httpSrv != nil {
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("websocket feed shutdown failed", "error", err)
		}
	}
	stopGRPC(shutdownCtx, srv)

	if err := svc.Autosave(shutdownCtx); err != nil {
		slog.Error("final save failed", "game_id", defaultGameID, "error", err)
	} else {
		slog.Info("session saved", "game_id", defaultGameID)
	}

	return serveErr
}

func stopGRPC(ctx context.Context, srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("gRPC server stopped gracefully")
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return cat, nil
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

// newRepository returns the game save store selected by --storage and a func
// releasing its connection
func newRepository(ctx context.Context) (gamesave.Repository, func(), error) {
	switch storage {
	case storageMemory:
		slog.Warn("using in-memory game saves, progress is lost on exit")
		return gamesave.NewInMemory(), func() {}, nil
	case storageRedis:
		client, err := redis.NewClient(&redis.Config{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}

		if err := redis.Ping(ctx, client); err != nil {
			closeClient()
			return nil, nil, fmt.Errorf("redis unavailable at %s: %w", redisAddr, err)
		}

		repo, err := gamesave.NewRedis(&gamesave.RedisConfig{Client: client})
		if err != nil {
			closeClient()
			return nil, nil, fmt.Errorf("failed to create game save repository: %w", err)
		}
		slog.Info("using redis game saves", "addr", redisAddr, "db", redisDB)
		return repo, closeClient, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q, want %s or %s", storage, storageRedis, storageMemory)
	}
}

// worldRemover stands in for the world while the server runs headless:
// picked-up sources are only logged
type worldRemover struct{}

var _ inv.EntityRemover = (*worldRemover)(nil)

func (r *worldRemover) Destroy(entity core.Entity) {
	slog.Info("world entity removed", "entity_id", entity.GetID(), "entity_type", entity.GetType())
}
