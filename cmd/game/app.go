package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dndadventure/cmd/game/ui"
	"dndadventure/internal/config"
	"dndadventure/internal/debug"
	"dndadventure/internal/dice"
	"dndadventure/internal/llm"
	"dndadventure/internal/logging"
	"dndadventure/internal/narrator"
	"dndadventure/internal/observability"
)

func createApp(cfg config.Config, enableNarration bool) (ui.Model, func(), error) {
	debugLogger := debug.NewLogger(cfg.Debug)

	ctx := context.Background()
	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	sessionID := uuid.NewString()
	debugLogger.Printf("Starting session %s", sessionID)

	narrationLog, err := logging.NewNarrationLogger()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to initialize narration logger: %w", err)
	}

	enabled := enableNarration && cfg.NarrationConfigured()
	var completer narrator.Completer
	if enabled {
		completer = llm.NewService(cfg.APIKey, cfg.Model, debugLogger)
		debugLogger.Printf("Narration enabled with model %s", cfg.Model)
	} else {
		debugLogger.Println("Narration disabled for this session")
	}

	warnings := ui.NewWarnings()
	dm := narrator.New(
		narrator.Config{Enabled: enabled, Model: cfg.Model},
		completer,
		narrator.WithLogger(narrationLog),
		narrator.WithDebug(debugLogger),
		narrator.WithSessionID(sessionID),
		narrator.WithWarnFunc(warnings.Add),
	)

	model := ui.NewModel(dm, warnings, debugLogger, dice.NewRoller())

	cleanup := func() {
		narrationLog.Close()
		if tracerProvider != nil {
			tracerProvider.Shutdown(context.Background())
		}
	}

	return model, cleanup, nil
}
