package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bicara-go/internal/model"
)

func TestProfileRepository_GetUninitialized(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	_, err := repo.Get()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileRepository_SingletonRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	require.NoError(t, repo.Create(&model.Profile{Name: "Budi"}))

	profile, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.ProfileSingletonID, profile.ID)
	assert.Equal(t, "Budi", profile.Name)

	profile.Name = "Siti"
	require.NoError(t, repo.Update(profile))

	updated, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Siti", updated.Name)

	var count int64
	require.NoError(t, db.Model(&model.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
