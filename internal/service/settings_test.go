package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
)

func TestSettingsGetCreatesSingletonOnFirstRead(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.WebsiteConfigKey, cfg.Key)
	assert.False(t, cfg.ID.IsZero())
	assert.Equal(t, 1, repo.inserts)

	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
	assert.Equal(t, 1, repo.inserts, "the singleton is created once")
}

func TestSettingsGetLosesCreateRace(t *testing.T) {
	winner := model.DefaultWebsiteConfig()
	winner.Site.Name = "already here"
	repo := &fakeSettingsRepo{raceDoc: winner}
	svc := NewSettingsService(repo)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "already here", cfg.Site.Name, "the concurrent writer's document wins")
}

func TestSettingsUpdateDeepMergesSections(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	tagline := "keep me"
	_, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		Site: &dto.SiteSection{Tagline: &tagline},
	})
	require.NoError(t, err)

	name := "Atlas"
	cfg, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		Site: &dto.SiteSection{Name: &name},
	})
	require.NoError(t, err)

	// untouched sibling fields survive a partial section update
	assert.Equal(t, "Atlas", cfg.Site.Name)
	assert.Equal(t, "keep me", cfg.Site.Tagline)
}

func TestSettingsUpdateReplacesFeatureMapWholesale(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		Features: `{"blog": true}`,
	})
	require.NoError(t, err)

	cfg, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		Features: `{"newsletter": "true"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"newsletter": true}, cfg.Features)
}

func TestSettingsResetKeepsIdentity(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	name := "custom"
	seeded, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{
		Site: &dto.SiteSection{Name: &name},
	})
	require.NoError(t, err)

	fresh, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, fresh.ID)
	assert.Equal(t, seeded.CreatedAt, fresh.CreatedAt)
	assert.Empty(t, fresh.Site.Name)
}
