package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/lmercadov/finadvisor/providers/tool"
	"github.com/lmercadov/finadvisor/providers/tool/budget"
	"github.com/lmercadov/finadvisor/providers/tool/cashflow"
	"github.com/lmercadov/finadvisor/providers/tool/fxconvert"
	"github.com/lmercadov/finadvisor/providers/tool/retirement"
	"github.com/lmercadov/finadvisor/providers/tool/riskprofile"
	"github.com/lmercadov/finadvisor/providers/tool/stockquote"
	"github.com/lmercadov/finadvisor/resources"
	"github.com/lmercadov/finadvisor/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("FINADVISOR_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	finnhubKey := os.Getenv("FINNHUB_API_KEY")
	if finnhubKey == "" {
		logger.Info("FINNHUB_API_KEY not set, live quotes disabled")
	}

	catalog := tool.NewCatalogWithTools(
		fxconvert.NewFxConvertTool(),
		cashflow.NewCashflowTool(),
		budget.NewBudgetTool(),
		riskprofile.NewRiskProfileTool(),
		retirement.NewRetirementTool(),
		stockquote.NewQuoteTool(stockquote.Config{APIKey: finnhubKey}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8787"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(catalog, resources.Default(), logger)
	if err := srv.ListenAndServe(ctx, ":"+port); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func logLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
