// Package bootstrap assembles the tool registry from configuration. Both
// the HTTP API and the CLI build their registry here.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	redisad "skideal/internal/adapters/redis"
	"skideal/internal/adapters/sixt"
	"skideal/internal/adapters/tools"
	"skideal/internal/app"
	"skideal/internal/domain"
	"skideal/internal/shared"
	"skideal/internal/storage/datafile"
)

// Registry builds the tools for cfg.BotVariant. The returned cleanup closes
// any connection opened along the way.
func Registry(ctx context.Context, cfg shared.Config) (*tools.Registry, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	reg := tools.NewRegistry(cfg.ToolTimeout)
	cleanup := func() {}

	if cfg.WantsSki() {
		var sink domain.LeadSink
		if cfg.RedisAddr != "" {
			q := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.HandoffQueue)
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := q.Ping(pctx)
			cancel()
			if err != nil {
				// leads are still logged; the queue may come back
				log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
			}
			sink = q
			cleanup = func() { _ = q.Close() }
		}

		err := tools.RegisterSki(reg, tools.SkiDeps{
			Hotels:     app.NewDirectory(datafile.NewStore(cfg.HotelsPath), domain.HotelSchema),
			Camps:      app.NewDirectory(datafile.NewStore(cfg.CampsPath), domain.CampSchema),
			KosherPath: cfg.KosherPath,
			Handoff:    app.NewHandoffService(sink),
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("register ski tools: %w", err)
		}
	}

	if cfg.WantsCars() {
		client, err := sixt.New(cfg.SalesBase, cfg.SalesRPS, cfg.SalesTimeout)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("sales client: %w", err)
		}
		if err := tools.RegisterCars(reg, client); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("register car tools: %w", err)
		}
	}

	log.Info().Str("variant", cfg.BotVariant).Int("tools", len(reg.All())).Msg("tool registry ready")
	return reg, cleanup, nil
}
