// Command toolcall runs agent tools from the shell, for support staff and
// for replaying calls captured from the agent runtime.
//
// Usage:
//
//	toolcall list
//	toolcall call get_hotels_list '{"country":"אוסטריה"}'
//	cat calls.jsonl | toolcall batch
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"skideal/internal/adapters/observability"
	"skideal/internal/adapters/tools"
	"skideal/internal/bootstrap"
	"skideal/internal/shared"
)

func main() {
	cfg := shared.Load()

	// stdout carries tool output, so logs go to stderr
	log.Logger = observability.NewStderrLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := func(ctx context.Context) (*tools.Registry, func(), error) {
		return bootstrap.Registry(ctx, cfg)
	}
	if err := newRootCmd(build, cfg.ToolWorkers).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
