package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tfs2006/affiliate-simulator/internal/catalog"
	"github.com/tfs2006/affiliate-simulator/internal/config"
	"github.com/tfs2006/affiliate-simulator/internal/game"
	"github.com/tfs2006/affiliate-simulator/internal/save"
	"github.com/tfs2006/affiliate-simulator/internal/server"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
	"github.com/tfs2006/affiliate-simulator/internal/telemetry"
)

func main() {
	// A local .env may carry SIM_* balance overrides; absence is fine.
	_ = godotenv.Load()

	var (
		addr       = flag.String("addr", ":8080", "listen address")
		configPath = flag.String("config", "simulator.yml", "balance config file")
		dataDir    = flag.String("data-dir", "data", "directory for JSON save slots")
		dbPath     = flag.String("db", "", "sqlite save database (overrides -data-dir)")
		slot       = flag.String("slot", "autosave", "slot to resume and autosave")
		seed       = flag.Uint64("seed", 0, "fixed RNG seed, 0 means system entropy")
	)
	flag.Parse()

	bal, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	bal = config.FromEnv(bal)

	var store save.Store
	if *dbPath != "" {
		st, err := save.OpenSQLiteStore(*dbPath)
		if err != nil {
			log.Fatalf("open save db: %v", err)
		}
		defer st.Close()
		store = st
	} else {
		st, err := save.NewFileStore(*dataDir)
		if err != nil {
			log.Fatalf("open save dir: %v", err)
		}
		store = st
	}

	var rng sim.RNG = sim.SystemRNG{}
	if *seed != 0 {
		rng = sim.NewSeeded(*seed)
	}

	content := catalog.New(bal)
	events := telemetry.NewMemoryRepository()
	engine := game.New(game.Options{
		Balance:   bal,
		Content:   &content,
		RNG:       rng,
		Telemetry: events,
	})

	if snap, err := store.Load(*slot); err == nil {
		engine.Replace(snap.State)
		log.Printf("resumed slot %q at day %d", *slot, snap.State.Day)
	} else if !errors.Is(err, save.ErrNotFound) {
		log.Fatalf("load slot %q: %v", *slot, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go engine.RunAutoDay(ctx)

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(engine, store, events, content).Handler(),
	}

	go func() {
		<-ctx.Done()
		if _, err := store.Save(*slot, engine.State()); err != nil {
			log.Printf("autosave on shutdown failed: %v", err)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
