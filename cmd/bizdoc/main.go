// File path: cmd/bizdoc/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bizdocai/bizdoc/internal/api"
	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/export"
	"github.com/bizdocai/bizdoc/internal/generator"
	"github.com/bizdocai/bizdoc/internal/llm"
	"github.com/bizdocai/bizdoc/internal/state"
	"github.com/bizdocai/bizdoc/internal/store"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("bizdoc: .env file not loaded", "error", err)
	} else {
		logger.Info("bizdoc: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "", "path to the SQLite database (overrides BIZDOC_DB_PATH)")
	exportDir := flag.String("export-dir", defaultExportDir(), "directory for exported PDF files")
	flag.Parse()

	logger.Info("bizdoc: startup initiated", "addr", *addr)

	rec, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("bizdoc: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer rec.Close()

	st, err := state.New(ctx, rec)
	if err != nil {
		logger.Error("bizdoc: state load failed", "error", err)
		fmt.Println("state error:", err)
		os.Exit(1)
	}

	provider := llm.NewProvider(ctx)
	gen := generator.NewService(st, provider)
	exporter := export.NewPDFExporter(*exportDir)

	srv, err := api.NewServer(st, gen, exporter)
	if err != nil {
		logger.Error("bizdoc: server init failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("bizdoc: listening", "addr", *addr, "provider", provider.Name())
	if err := http.ListenAndServe(*addr, srv); err != nil {
		logger.Error("bizdoc: server stopped", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}

func defaultExportDir() string {
	if dir := strings.TrimSpace(os.Getenv("BIZDOC_EXPORT_DIR")); dir != "" {
		return dir
	}
	return "exports"
}
