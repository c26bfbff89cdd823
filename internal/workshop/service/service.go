package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/robomate/servicedesk/internal/config"
	"github.com/robomate/servicedesk/internal/shared/generator"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"go.uber.org/zap"
)

// Services is the set of workshop services.
type Services struct {
	Auth      *AuthService
	Record    *RecordService
	Part      *PartService
	Reconcile *ReconcileService
}

// NewServices wires the services over the repositories. The generator
// client is only constructed when an API key is configured; without one
// every generation falls back to the placeholder texts.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var gen Generator
	if cfg.Generator.APIKey != "" {
		gen = generator.NewClient(cfg.Generator.APIKey, cfg.Generator.Model)
	} else {
		gen = unavailableGenerator{}
	}

	return &Services{
		Auth:      NewAuthService(repos.Users, rdb, cfg),
		Record:    NewRecordService(repos.Records, repos.Parts, gen, logger),
		Part:      NewPartService(repos.Parts),
		Reconcile: NewReconcileService(repos.Records, logger),
	}
}
