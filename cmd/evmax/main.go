// File path: cmd/evmax/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/evmaxhq/evmax-catalog/internal/api"
	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/common"
	"github.com/evmaxhq/evmax-catalog/internal/config"
	"github.com/evmaxhq/evmax-catalog/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("evmax: .env file not loaded", "error", err)
	} else {
		logger.Info("evmax: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", defaultDatabasePath(), "path to the SQLite database")
	flag.Parse()

	logger.Info("evmax: startup initiated", "addr", *addr, "db", *dbPath)

	settings, err := config.Load()
	if err != nil {
		logger.Error("evmax: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("evmax: sqlite initialization failed", "error", err)
		fmt.Println("sqlite error:", err)
		os.Exit(1)
	}
	defer store.Close()

	chains := chain.NewStore(
		chain.WithMaxDepth(settings.MaxChainDepth),
		chain.WithSnapshotTTL(settings.SnapshotTTL),
		chain.WithCycleCheck(settings.CycleCheckEnabled()),
	)

	server, err := api.NewServer(store, chains, settings)
	if err != nil {
		logger.Error("evmax: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("evmax: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("evmax: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("evmax: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDatabasePath() string {
	return filepath.Join("data", "evmax.db")
}
