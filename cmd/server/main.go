package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"furrow/internal/adapter/archive"
	httpadapter "furrow/internal/adapter/http"
	metricsinmem "furrow/internal/adapter/metrics/inmemory"
	gormrepo "furrow/internal/adapter/repo/gorm"
	"furrow/internal/adapter/repo/memory"
	sqlitejournal "furrow/internal/adapter/repo/sqlite"
	"furrow/internal/adapter/ws"
	"furrow/internal/app/action"
	"furrow/internal/app/ports"
	"furrow/internal/app/replay"
	"furrow/internal/app/session"
	"furrow/internal/app/status"
	"furrow/internal/app/toast"
	"furrow/internal/config"
	"furrow/internal/domain/farmer"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("load env: %v", err)
	}
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	chooser, err := cfg.Chooser()
	if err != nil {
		log.Fatalf("perk chooser: %v", err)
	}

	store := memory.NewStore()
	sessions := memory.NewSessionRepo(store)
	j, err := openJournal(context.Background(), cfg, store)
	if err != nil {
		log.Fatalf("open journal: %v", err)
	}
	log.Printf("event journal: %s", j.kind)

	var days ports.DayArchive
	var dayArchive *archive.DayArchive
	if cfg.ArchiveDir != "" {
		dayArchive = archive.NewDayArchive(cfg.ArchiveDir, log.Default())
		days = dayArchive
	}

	hub := ws.NewHub(log.Default())
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SessionUC: session.UseCase{
			TxManager:   j.tx,
			Sessions:    sessions,
			EventRepo:   j.events,
			Publisher:   hub,
			Tuning:      tuning,
			DefaultSeed: cfg.Seed,
			Now:         time.Now,
		},
		ActionUC: action.UseCase{
			TxManager: j.tx,
			Sessions:  sessions,
			EventRepo: j.events,
			Publisher: hub,
			Archive:   days,
			Metrics:   kpiRecorder,
			Tuning:    tuning,
			Chooser:   chooser,
			Now:       time.Now,
		},
		StatusUC: status.UseCase{TxManager: j.tx, Sessions: sessions, TileSize: farmer.DefaultTileSizePx},
		ToastUC:  toast.UseCase{TxManager: j.tx, Sessions: sessions, Now: time.Now},
		ReplayUC: replay.UseCase{TxManager: j.tx, Events: j.events},
		KPI:      kpiRecorder,
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub.Handler())
	events := &http.Server{Addr: cfg.EventsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := events.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("event stream stopped: %v", err)
		}
	}()

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)
	s.OnShutdown = append(s.OnShutdown, func(ctx context.Context) {
		if err := events.Shutdown(ctx); err != nil {
			log.Printf("event stream shutdown: %v", err)
		}
		if dayArchive != nil {
			if err := dayArchive.Close(); err != nil {
				log.Printf("close day archive: %v", err)
			}
		}
		if err := j.close(); err != nil {
			log.Printf("close journal: %v", err)
		}
	})

	log.Printf("furrow server listening on %s (events on %s/ws)", cfg.HTTPAddr, cfg.EventsAddr)
	s.Spin()
}

type journal struct {
	kind   string
	events ports.EventRepository
	tx     ports.TxManager
	close  func() error
}

// openJournal picks the event store: postgres when a DSN is set, then a
// sqlite file, then the in-process store. Sessions always live in memory,
// so every choice still serializes on the memory lock.
func openJournal(ctx context.Context, cfg config.Env, store *memory.Store) (journal, error) {
	memTx := memory.NewTxManager(store)
	switch {
	case cfg.DBDSN != "":
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return journal{}, err
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir)
		if err != nil {
			return journal{}, err
		}
		if len(applied) > 0 {
			log.Printf("applied migrations: %v", applied)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return journal{}, err
		}
		return journal{
			kind:   "postgres",
			events: gormrepo.NewEventRepo(db),
			tx:     memTx.Within(gormrepo.NewTxManager(db)),
			close:  sqlDB.Close,
		}, nil
	case cfg.SQLitePath != "":
		jr, err := sqlitejournal.Open(cfg.SQLitePath)
		if err != nil {
			return journal{}, err
		}
		return journal{kind: "sqlite", events: jr, tx: memTx, close: jr.Close}, nil
	default:
		return journal{
			kind:   "memory",
			events: memory.NewEventRepo(store),
			tx:     memTx,
			close:  func() error { return nil },
		}, nil
	}
}
