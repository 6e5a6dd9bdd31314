package character

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JayByRP/shield/core"
	"github.com/JayByRP/shield/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	annabeth := core.Character{
		Name:      "Annabeth",
		Faceclaim: "Alexandra Daddario",
		Image:     "https://cdn.example.com/annabeth.png",
		Bio:       "Strategist and architect.",
		Secret:    "hunter2",
	}

	created, err := repo.Create(ctx, annabeth)
	if assert.NoError(t, err) {
		assert.Equal(t, "Annabeth", created.Name)
		assert.Equal(t, "Alexandra Daddario", created.Faceclaim)
	}

	// second create with the same name loses
	_, err = repo.Create(ctx, annabeth)
	assert.True(t, errors.Is(err, core.ErrorAlreadyExists{}))

	found, err := repo.Get(ctx, "Annabeth")
	if assert.NoError(t, err) {
		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Bio, found.Bio)
		assert.Equal(t, created.Secret, found.Secret)
	}

	_, err = repo.Get(ctx, "Nobody")
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	annika := annabeth
	annika.Name = "Annika"
	_, err = repo.Create(ctx, annika)
	assert.NoError(t, err)

	matches, err := repo.GetByPrefix(ctx, "ann", 5)
	if assert.NoError(t, err) {
		assert.Len(t, matches, 2)
	}

	matches, err = repo.GetByPrefix(ctx, "ann", 1)
	if assert.NoError(t, err) {
		assert.Len(t, matches, 1)
	}

	matches, err = repo.GetByPrefix(ctx, "zzz", 5)
	if assert.NoError(t, err) {
		assert.Len(t, matches, 0)
	}

	// LIKE metacharacters in the prefix are literals
	matches, err = repo.GetByPrefix(ctx, "%", 5)
	if assert.NoError(t, err) {
		assert.Len(t, matches, 0)
	}

	bio := "Rewritten biography."
	updated, err := repo.Update(ctx, "Annabeth", core.CharacterPatch{Bio: &bio})
	if assert.NoError(t, err) {
		assert.Equal(t, bio, updated.Bio)
		assert.Equal(t, "Alexandra Daddario", updated.Faceclaim)
		assert.Equal(t, "hunter2", updated.Secret)
	}

	_, err = repo.Update(ctx, "Nobody", core.CharacterPatch{Bio: &bio})
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	all, err := repo.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, all, 2)
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}

	deleted, err := repo.Delete(ctx, "Annika")
	if assert.NoError(t, err) {
		assert.Equal(t, "Annika", deleted.Name)
	}

	_, err = repo.Get(ctx, "Annika")
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	_, err = repo.Delete(ctx, "Annika")
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}

func TestRepositoryConcurrentCreate(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	character := core.Character{
		Name:      "Percy",
		Faceclaim: "Logan Lerman",
		Image:     "https://cdn.example.com/percy.jpg",
		Bio:       "Son of the sea.",
		Secret:    "riptide",
	}

	const workers = 8

	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = repo.Create(ctx, character)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, core.ErrorAlreadyExists{}):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)
}
