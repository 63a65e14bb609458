package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/donorvault/donorvault-backend/internal/adapter/grpc"
	donorvaultv1 "github.com/donorvault/donorvault-backend/internal/adapter/grpc/donorvault/v1"
	"github.com/donorvault/donorvault-backend/internal/adapter/recorder"
	"github.com/donorvault/donorvault-backend/internal/adapter/repository/postgres"
	"github.com/donorvault/donorvault-backend/internal/adapter/strategy"
	"github.com/donorvault/donorvault-backend/internal/config"
	"github.com/donorvault/donorvault-backend/internal/domain"
	"github.com/donorvault/donorvault-backend/internal/scheduler"
	"github.com/donorvault/donorvault-backend/internal/usecase/campaign"
	"github.com/donorvault/donorvault-backend/internal/usecase/governance"
	"github.com/donorvault/donorvault-backend/internal/usecase/payout"
	"github.com/donorvault/donorvault-backend/internal/usecase/vault"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 1. Setup Database
	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(cfg.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 2. Initialize Repositories (Postgres)
	vaultRepo := postgres.NewVaultRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	preferenceRepo := postgres.NewPreferenceRepository(db)
	campaignRepo := postgres.NewCampaignRepository(db)
	stakeRepo := postgres.NewStakeRepository(db)
	checkpointRepo := postgres.NewCheckpointRepository(db)
	distributionRepo := postgres.NewDistributionRepository(db)
	payoutRepo := postgres.NewPayoutRepository(db)

	// 3. Event recorder (sqlite, noop fallback)
	var events domain.EventRecorder = recorder.Noop{}
	if cfg.Recorder.SQLitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			log.Printf("[WARN] sqlite recorder disabled: %v", err)
		} else {
			defer sqliteRec.Close()
			events = sqliteRec
		}
	}

	// 4. Initialize Services (Use Cases)
	registry := strategy.NewRegistry()
	payoutService := payout.NewService(
		vaultRepo, positionRepo, preferenceRepo, campaignRepo,
		distributionRepo, payoutRepo, db, db, events)
	vaultService := vault.NewService(
		vaultRepo, positionRepo, campaignRepo, stakeRepo,
		registry, db, db, payoutService, events)
	campaignService := campaign.NewService(
		campaignRepo, stakeRepo, checkpointRepo, positionRepo, db, db, events)
	governanceService := governance.NewService(
		campaignRepo, checkpointRepo, stakeRepo, positionRepo, db, db, events)

	// 5. Seed the default vault and bind the strategy adapter
	vaultID, err := seedVault(ctx, vaultRepo, vaultService, registry, cfg)
	if err != nil {
		log.Fatalf("Failed to seed vault: %v", err)
	}
	log.Printf("Vault %s ready (%s/%s)", vaultID, cfg.Vault.Name, cfg.Vault.Asset)

	// 6. Harvest keeper
	keeperID := uuid.New()
	harvestScheduler := scheduler.NewScheduler(ctx, vaultService, keeperID, []uuid.UUID{vaultID})
	if err := harvestScheduler.Register(cfg.Schedule.HarvestCron); err != nil {
		log.Fatalf("Failed to register harvest schedule: %v", err)
	}
	harvestScheduler.Start()
	defer harvestScheduler.Stop()

	// 7. Start gRPC Server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.Server.APIToken)),
	)

	grpcAdapter := grpcadapter.NewServer(vaultService, payoutService, campaignService, governanceService)
	donorvaultv1.RegisterDonorVaultServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	waitForShutdown(grpcServer)
}

// seedVault ensures the configured vault exists and has a live strategy
// binding. Adapter registrations are process-scoped, so a binding left over
// from a previous run is cleared before the fresh adapter is attached.
func seedVault(
	ctx context.Context,
	vaultRepo domain.VaultRepository,
	vaultService *vault.Service,
	registry *strategy.Registry,
	cfg *config.Config,
) (uuid.UUID, error) {
	var v *domain.Vault
	existing, err := vaultRepo.List(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	for _, candidate := range existing {
		if candidate.Name == cfg.Vault.Name && candidate.Asset == cfg.Vault.Asset {
			v = candidate
			break
		}
	}

	if v == nil {
		v = &domain.Vault{
			ID:                uuid.New(),
			Name:              cfg.Vault.Name,
			Asset:             cfg.Vault.Asset,
			CashBalance:       decimal.Zero,
			SharesOutstanding: decimal.Zero,
			CashBufferBps:     cfg.Vault.CashBufferBps,
			SlippageBps:       cfg.Vault.SlippageBps,
			MaxLossBps:        cfg.Vault.MaxLossBps,
			ProtocolFeeBps:    cfg.Vault.ProtocolFeeBps,
			Mode:              domain.VaultModeNormal,
			GracePeriod:       cfg.Vault.GracePeriod.Std(),
			MinHoldPeriod:     cfg.Vault.MinHoldPeriod.Std(),
			CreatedAt:         time.Now(),
			SchemaVersion:     1,
		}
		if err := vaultRepo.Create(ctx, v); err != nil {
			return uuid.Nil, err
		}
	} else if v.ActiveAdapterID != nil {
		v.ActiveAdapterID = nil
		if err := vaultRepo.Update(ctx, v); err != nil {
			return uuid.Nil, err
		}
	}

	adapter := strategy.NewFixedRateAdapter(v.ID, v.Asset, cfg.Strategy.RateBps, cfg.Strategy.Interval.Std())
	registry.Register(adapter)

	operator := uuid.New()
	if err := vaultService.SetAdapter(ctx, operator, v.ID, adapter.ID()); err != nil {
		return uuid.Nil, err
	}
	return v.ID, nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
