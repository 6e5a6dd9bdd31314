//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package character

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JayByRP/shield/core"
)

// Repository is the interface for character repository
type Repository interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	Get(ctx context.Context, name string) (core.Character, error)
	GetByPrefix(ctx context.Context, prefix string, limit int) ([]core.Character, error)
	Update(ctx context.Context, name string, patch core.CharacterPatch) (core.Character, error)
	Delete(ctx context.Context, name string) (core.Character, error)
	List(ctx context.Context) ([]core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: "character_count", Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: "character_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("character_count")
	if err != nil {
		var count int64
		err = r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error
		if err != nil {
			span.RecordError(err)
			return 0, pkgerrors.Wrap(err, "failed to count characters")
		}
		r.mc.Set(&memcache.Item{Key: "character_count", Value: []byte(strconv.FormatInt(count, 10))})
		return count, nil
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// Create persists a new character.
// The name primary key decides concurrent races: exactly one insert wins.
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&character)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Character{}, pkgerrors.Wrap(result.Error, "failed to create character")
	}
	if result.RowsAffected == 0 {
		return core.Character{}, core.NewErrorAlreadyExists()
	}

	r.refreshCount(ctx)

	return character, nil
}

// Get returns a character by exact name
func (r *repository) Get(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Get")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Character{}, pkgerrors.Wrap(err, "failed to get character")
	}

	return character, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetByPrefix returns up to limit characters whose name starts with prefix,
// case-insensitively. An empty result is not an error.
func (r *repository) GetByPrefix(ctx context.Context, prefix string, limit int) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetByPrefix")
	defer span.End()

	var characters []core.Character
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", likeEscaper.Replace(prefix)+"%").
		Order("name").
		Limit(limit).
		Find(&characters).Error
	if err != nil {
		span.RecordError(err)
		return []core.Character{}, pkgerrors.Wrap(err, "failed to query characters")
	}
	if characters == nil {
		return []core.Character{}, nil
	}

	return characters, nil
}

// Update applies the non-nil fields of patch to an existing character
func (r *repository) Update(ctx context.Context, name string, patch core.CharacterPatch) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	updates := map[string]any{}
	if patch.Faceclaim != nil {
		updates["faceclaim"] = *patch.Faceclaim
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	if patch.Orientation != nil {
		updates["orientation"] = *patch.Orientation
	}
	if patch.Program != nil {
		updates["program"] = *patch.Program
	}
	if patch.Year != nil {
		updates["year"] = *patch.Year
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&core.Character{}).Where("name = ?", name).Updates(updates)
		if result.Error != nil {
			span.RecordError(result.Error)
			return core.Character{}, pkgerrors.Wrap(result.Error, "failed to update character")
		}
		if result.RowsAffected == 0 {
			return core.Character{}, core.NewErrorNotFound()
		}
	}

	return r.Get(ctx, name)
}

// Delete removes a character and returns the removed row
func (r *repository) Delete(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).First(&character).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotFound()
			}
			return err
		}
		return tx.Where("name = ?", name).Delete(&core.Character{}).Error
	})
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return core.Character{}, err
		}
		span.RecordError(err)
		return core.Character{}, pkgerrors.Wrap(err, "failed to delete character")
	}

	r.refreshCount(ctx)

	return character, nil
}

// List returns all characters
func (r *repository) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.List")
	defer span.End()

	var characters []core.Character
	err := r.db.WithContext(ctx).Order("name").Find(&characters).Error
	if err != nil {
		span.RecordError(err)
		return []core.Character{}, pkgerrors.Wrap(err, "failed to list characters")
	}
	if characters == nil {
		return []core.Character{}, nil
	}

	return characters, nil
}
