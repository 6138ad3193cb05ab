// Package scoring provides the lead scoring bounded context module.
// This file defines the module that encapsulates all scoring setup and
// route registration.
package scoring

import (
	"avialeads_backend/internal/events"
	apphttp "avialeads_backend/internal/http"
	"avialeads_backend/internal/scoring/handler"
	"avialeads_backend/internal/scoring/repository"
	"avialeads_backend/internal/scoring/rules"
	"avialeads_backend/internal/scoring/service"
	"avialeads_backend/internal/scoring/store"
	"avialeads_backend/platform/config"
	"avialeads_backend/platform/logger"
	"avialeads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the scoring bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the scoring module with all its
// dependencies. The rule table is loaded from the configured overrides
// file when one is set; otherwise the built-in defaults apply.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.ScoringConfig, log *logger.Logger) (*Module, error) {
	repo := repository.New(pool)
	profiles := store.New(cfg.GetScoreHistoryCap())

	table := rules.Default()
	if path := cfg.GetScoringRulesFile(); path != "" {
		loaded, err := rules.LoadOverrides(path)
		if err != nil {
			return nil, err
		}
		table = loaded
		log.Info("scoring rule overrides loaded", "file", path)
	}

	svc := service.New(repo, profiles, table, eventBus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scoring"
}

// Service exposes the scoring service for other modules and workers.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the scoring routes on /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}
