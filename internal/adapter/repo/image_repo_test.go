package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelforge/internal/domain"
	"pixelforge/internal/infra/pgfake"
)

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func TestImageRepositoryCreate(t *testing.T) {
	db := pgfake.New()
	userID := db.AddUser("a@example.com")
	repo := NewImageRepository(db)

	img := &domain.Image{
		UserID:   userID,
		Prompt:   "a cat astronaut",
		ImageURL: "https://cdn.example.com/cat.png",
		Style:    "Digital Art",
		Size:     "1024x1024",
	}
	require.NoError(t, repo.Create(context.Background(), img))
	assert.NotEmpty(t, img.ID)
	assert.False(t, img.CreatedAt.IsZero())

	stored := db.Images()
	require.Len(t, stored, 1)
	assert.Equal(t, img.ID, stored[0].ID)
	assert.Equal(t, "a cat astronaut", stored[0].Prompt)
	assert.Equal(t, "Digital Art", stored[0].Style)
}

func TestImageRepositoryCreateMissingField(t *testing.T) {
	db := pgfake.New()
	repo := NewImageRepository(db)

	err := repo.Create(context.Background(), &domain.Image{UserID: db.AddUser("a@example.com"), Prompt: "p", Style: "s", Size: "1024x1024"})
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.Contains(t, err.Error(), "image_url")
	assert.Empty(t, db.Images())
}

func TestImageRepositoryCreateUnknownOwner(t *testing.T) {
	repo := NewImageRepository(pgfake.New())
	err := repo.Create(context.Background(), &domain.Image{
		UserID:   "0190a0d2-0000-7000-8000-000000000000",
		Prompt:   "p",
		ImageURL: "https://cdn.example.com/x.png",
		Style:    "Anime",
		Size:     "1024x1024",
	})
	require.ErrorIs(t, err, domain.ErrUnknownOwner)
}

func TestImageRepositoryCreateDoesNotDeduplicate(t *testing.T) {
	db := pgfake.New()
	userID := db.AddUser("a@example.com")
	repo := NewImageRepository(db)

	for i := 0; i < 2; i++ {
		img := &domain.Image{UserID: userID, Prompt: "same", ImageURL: "https://cdn.example.com/same.png", Style: "Anime", Size: "1024x1024"}
		require.NoError(t, repo.Create(context.Background(), img))
	}
	stored := db.Images()
	require.Len(t, stored, 2)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestImageRepositoryListByUserNewestFirst(t *testing.T) {
	db := pgfake.New()
	db.Now = fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)
	alice := db.AddUser("alice@example.com")
	bob := db.AddUser("bob@example.com")
	repo := NewImageRepository(db)

	for _, prompt := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(context.Background(), &domain.Image{
			UserID: alice, Prompt: prompt, ImageURL: "https://cdn.example.com/" + prompt, Style: "Anime", Size: "1024x1024",
		}))
	}
	require.NoError(t, repo.Create(context.Background(), &domain.Image{
		UserID: bob, Prompt: "other", ImageURL: "https://cdn.example.com/other", Style: "Anime", Size: "1024x1024",
	}))

	images, err := repo.ListByUser(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "third", images[0].Prompt)
	assert.Equal(t, "second", images[1].Prompt)
	assert.Equal(t, "first", images[2].Prompt)
	for _, img := range images {
		assert.Equal(t, alice, img.UserID)
	}
}

func TestImageRepositoryListByUserTiesUseID(t *testing.T) {
	db := pgfake.New()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Now = func() time.Time { return at }
	userID := db.AddUser("a@example.com")
	repo := NewImageRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		img := &domain.Image{UserID: userID, Prompt: "p", ImageURL: "https://cdn.example.com/p", Style: "Anime", Size: "1024x1024"}
		require.NoError(t, repo.Create(context.Background(), img))
		ids = append(ids, img.ID)
	}

	images, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, ids[2], images[0].ID)
	assert.Equal(t, ids[0], images[2].ID)
}

func TestImageRepositoryListByUserEmpty(t *testing.T) {
	db := pgfake.New()
	images, err := NewImageRepository(db).ListByUser(context.Background(), db.AddUser("a@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestImageRepositoryPropagatesInsertErrors(t *testing.T) {
	db := pgfake.New()
	db.FailImageInsert = errors.New("disk full")
	err := NewImageRepository(db).Create(context.Background(), &domain.Image{
		UserID: db.AddUser("a@example.com"), Prompt: "p", ImageURL: "u", Style: "s", Size: "1024x1024",
	})
	require.EqualError(t, err, "disk full")
}
