// Package guard decides whether a mutation request may touch a character.
package guard

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/JayByRP/shield/core"
	"github.com/JayByRP/shield/x/util"
)

var tracer = otel.Tracer("guard")

type service struct {
	repo   Repository
	config util.Config
}

// NewService creates a new guard service
func NewService(repo Repository, config util.Config) core.GuardService {
	return &service{repo, config}
}

// Authorize returns nil iff the named character exists and the supplied
// secret matches its stored secret or the configured admin override.
// Every other case, a missing record included, yields the same denial.
func (s *service) Authorize(ctx context.Context, name, secret string) error {
	ctx, span := tracer.Start(ctx, "Guard.Service.Authorize")
	defer span.End()

	stored, err := s.repo.GetSecret(ctx, name)
	if err != nil {
		return core.NewErrorPermissionDenied()
	}

	if secret == stored {
		return nil
	}
	if s.config.Roster.AdminSecret != "" && secret == s.config.Roster.AdminSecret {
		return nil
	}

	return core.NewErrorPermissionDenied()
}
