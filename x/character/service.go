package character

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JayByRP/shield/core"
)

// showMatchLimit bounds the candidate list returned on an ambiguous lookup
const showMatchLimit = 10

type service struct {
	repo      Repository
	guard     core.GuardService
	publisher core.Publisher
}

// NewService creates a new character service
func NewService(repo Repository, guard core.GuardService, publisher core.Publisher) core.CharacterService {
	return &service{repo, guard, publisher}
}

// Create validates the input and persists a new character
func (s *service) Create(ctx context.Context, input core.NewCharacter) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	if input.Name == "" || input.Faceclaim == "" || input.Bio == "" || input.Secret == "" {
		return core.Character{}, core.NewErrorInvalidRequest("name, faceclaim, image, bio and secret are required")
	}
	if !IsValidImageURL(input.Image) {
		return core.Character{}, core.NewErrorInvalidImage()
	}
	if err := validateDemographics(input.Gender, input.Orientation, input.Program, input.Year); err != nil {
		return core.Character{}, err
	}

	character := core.Character{
		Name:        input.Name,
		Faceclaim:   input.Faceclaim,
		Image:       input.Image,
		Bio:         input.Bio,
		Secret:      input.Secret,
		Gender:      input.Gender,
		Orientation: input.Orientation,
		Program:     input.Program,
		Year:        input.Year,
	}

	created, err := s.repo.Create(ctx, character)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	s.publish(ctx, core.NewEvent(core.EventActionCreate, created))

	return created, nil
}

// Edit updates the provided fields of an existing character
func (s *service) Edit(ctx context.Context, name, secret string, patch core.CharacterPatch) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Edit")
	defer span.End()

	if err := s.guard.Authorize(ctx, name, secret); err != nil {
		return core.Character{}, err
	}

	if patch.Image != nil && !IsValidImageURL(*patch.Image) {
		return core.Character{}, core.NewErrorInvalidImage()
	}
	if err := validateDemographics(patch.Gender, patch.Orientation, patch.Program, patch.Year); err != nil {
		return core.Character{}, err
	}

	updated, err := s.repo.Update(ctx, name, patch)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	s.publish(ctx, core.NewEvent(core.EventActionEdit, updated))

	return updated, nil
}

// Delete removes a character
func (s *service) Delete(ctx context.Context, name, secret string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	if err := s.guard.Authorize(ctx, name, secret); err != nil {
		return core.Character{}, err
	}

	deleted, err := s.repo.Delete(ctx, name)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	s.publish(ctx, core.NewEvent(core.EventActionDelete, deleted))

	return deleted, nil
}

// Show returns a character by exact name, falling back to a unique
// case-insensitive prefix match. Multiple prefix matches surface the
// candidates so the caller can disambiguate.
func (s *service) Show(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Show")
	defer span.End()

	character, err := s.repo.Get(ctx, name)
	if err == nil {
		return character, nil
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		span.RecordError(err)
		return core.Character{}, err
	}

	candidates, err := s.repo.GetByPrefix(ctx, name, showMatchLimit)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}

	switch len(candidates) {
	case 0:
		return core.Character{}, core.NewErrorNotFound()
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, candidate := range candidates {
			names[i] = candidate.Name
		}
		return core.Character{}, core.NewErrorAmbiguous(names)
	}
}

// List returns a snapshot of all characters
func (s *service) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Count returns the total number of characters
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// publish hands the event to the publisher after the mutation is committed.
// Delivery is best-effort: a publish failure never fails the operation.
func (s *service) publish(ctx context.Context, event core.Event) {
	err := s.publisher.Publish(ctx, event)
	if err != nil {
		slog.Error(
			fmt.Sprintf("failed to publish %s event for %s", event.Action, event.Name),
			slog.String("error", err.Error()),
			slog.String("module", "character"),
		)
	}
}
