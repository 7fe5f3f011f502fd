package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	httpadapter "emberside/internal/adapter/http"
	metricsinmem "emberside/internal/adapter/metrics/inmemory"
	gormrepo "emberside/internal/adapter/repo/gorm"
	"emberside/internal/adapter/repo/memory"
	sqliterepo "emberside/internal/adapter/repo/sqlite"
	staticskills "emberside/internal/adapter/skills/static"
	snapshotstore "emberside/internal/adapter/snapshot"
	"emberside/internal/adapter/watch"
	"emberside/internal/app/action"
	"emberside/internal/app/advance"
	"emberside/internal/app/observe"
	"emberside/internal/app/ports"
	"emberside/internal/app/replay"
	"emberside/internal/app/skills"
	"emberside/internal/app/snapshot"
	"emberside/internal/app/status"
	"emberside/internal/config"
	"emberside/internal/domain/survival"
	"emberside/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("EMBERSIDE_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	repos, err := buildRepos(cfg.Database)
	if err != nil {
		log.Fatalf("open %s store: %v", cfg.Database.Driver, err)
	}
	snapshots, err := snapshotstore.NewFileStore(cfg.Snapshot.Dir)
	if err != nil {
		log.Fatalf("open snapshot dir: %v", err)
	}

	dice := world.SeededDice(cfg.World.Seed)
	if err := ensureWorld(context.Background(), repos.World, snapshots, cfg.World, dice); err != nil {
		log.Fatalf("ensure world %s: %v", cfg.World.ID, err)
	}

	hub := watch.NewHub()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		ActionUC: action.UseCase{
			TxManager:  repos.Tx,
			WorldRepo:  repos.World,
			ActionRepo: repos.Action,
			EventRepo:  repos.Events,
			Metrics:    kpiRecorder,
			Publisher:  hub,
			Resolver:   survival.ResolverService{},
			Ticker:     survival.TickService{},
			Dice:       dice,
			Now:        time.Now,
		},
		AdvanceUC: advance.UseCase{
			TxManager:          repos.Tx,
			WorldRepo:          repos.World,
			EventRepo:          repos.Events,
			Publisher:          hub,
			Snapshots:          snapshots,
			SnapshotEveryTicks: cfg.Snapshot.EveryTicks,
			Ticker:             survival.TickService{},
			Dice:               dice,
			Now:                time.Now,
		},
		StatusUC:   status.UseCase{WorldRepo: repos.World},
		ObserveUC:  observe.UseCase{WorldRepo: repos.World},
		ReplayUC:   replay.UseCase{Events: repos.Events},
		SkillsUC:   skills.UseCase{Provider: staticskills.Provider{Root: cfg.Skills.Root}, WorldRepo: repos.World},
		SnapshotUC: snapshot.UseCase{WorldRepo: repos.World, Store: snapshots},
		KPI:        kpiRecorder,
	}

	go func() {
		log.Printf("watch hub listening on %s", cfg.Server.WatchAddr)
		if err := http.ListenAndServe(cfg.Server.WatchAddr, watch.NewServer(hub).Routes()); err != nil {
			log.Fatalf("watch listener: %v", err)
		}
	}()

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("emberside listening on %s (world %s, %s store)", cfg.Server.Addr, cfg.World.ID, cfg.Database.Driver)
	s.Spin()
}

type repoSet struct {
	World  ports.WorldRepository
	Action ports.ActionExecutionRepository
	Events ports.EventRepository
	Tx     ports.TxManager
}

func buildRepos(cfg config.Database) (repoSet, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := gormrepo.OpenPostgres(cfg.DSN)
		if err != nil {
			return repoSet{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := gormrepo.ApplyMigrations(context.Background(), db, "./migrations"); err != nil {
			return repoSet{}, fmt.Errorf("apply migrations: %w", err)
		}
		return repoSet{
			World:  gormrepo.NewWorldRepo(db),
			Action: gormrepo.NewActionExecutionRepo(db),
			Events: gormrepo.NewEventRepo(db),
			Tx:     gormrepo.NewTxManager(db),
		}, nil
	case "sqlite":
		db, err := sqliterepo.Open(cfg.Path)
		if err != nil {
			return repoSet{}, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqliterepo.EnsureSchema(context.Background(), db); err != nil {
			return repoSet{}, fmt.Errorf("prepare sqlite schema: %w", err)
		}
		return repoSet{
			World:  sqliterepo.NewWorldRepo(db),
			Action: sqliterepo.NewActionExecutionRepo(db),
			Events: sqliterepo.NewEventRepo(db),
			Tx:     sqliterepo.NewTxManager(db),
		}, nil
	default:
		store := memory.NewStore()
		return repoSet{
			World:  memory.NewWorldRepo(store),
			Action: memory.NewActionExecutionRepo(store),
			Events: memory.NewEventRepo(store),
			Tx:     memory.NewTxManager(store),
		}, nil
	}
}

// ensureWorld guarantees the configured world exists before the server
// accepts requests. A missing world is restored from the newest
// snapshot archive when one exists and seeded fresh otherwise.
func ensureWorld(ctx context.Context, repo ports.WorldRepository, snapshots ports.SnapshotStore, cfg config.World, dice world.Dice) error {
	_, err := repo.Get(ctx, cfg.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return err
	}

	restored, readErr := snapshots.Read(ctx, cfg.ID)
	if readErr == nil {
		log.Printf("restoring world %s from snapshot (version %d, tick %d)", cfg.ID, restored.Version, restored.Clock.Tick)
		return repo.SaveWithVersion(ctx, restored, 0)
	}
	if !errors.Is(readErr, ports.ErrNotFound) {
		return readErr
	}

	seed := survival.NewWorldState(cfg.ID, cfg.Seed, dice, time.Now().UTC())
	seed.Version = 1
	log.Printf("seeding world %s (seed %d)", cfg.ID, cfg.Seed)
	return repo.SaveWithVersion(ctx, seed, 0)
}
