//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package guard

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/JayByRP/shield/core"
)

// Repository is the guard's read-only slice of the character store
type Repository interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new guard repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// GetSecret returns the stored secret of a character
func (r *repository) GetSecret(ctx context.Context, name string) (string, error) {
	ctx, span := tracer.Start(ctx, "Guard.Repository.GetSecret")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).Select("secret").Where("name = ?", name).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", core.NewErrorNotFound()
		}
		span.RecordError(err)
		return "", pkgerrors.Wrap(err, "failed to get character secret")
	}

	return character.Secret, nil
}
