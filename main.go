package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminclient/entity"
	intconfig "adminclient/internal/config"
	router "adminclient/internal/http"
	"adminclient/internal/store"
)

// main runs the in-memory portal backend stub, the development target
// for the client packages.
func main() {
	env := intconfig.LoadEnv()

	stores := []*store.Store{
		store.New(entity.Assets),
		store.New(entity.Outlets),
		store.New(entity.SmartDevices),
		store.New(entity.Users),
	}
	if env.Seed {
		for _, s := range stores {
			store.SeedDemo(s)
		}
	}

	r := router.NewRouter(env, stores)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("portal stub listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("stopped cleanly.")
}
