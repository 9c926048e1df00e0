package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bicara-go/internal/apperr"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
)

func TestCreateSoundboard_Success(t *testing.T) {
	repo := repository.NewSoundboardRepository(newTestDB(t))
	store := newFakeObjectStore()
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	svc := NewSoundboardService(repo, synth, store)

	sb, err := svc.CreateSoundboard(context.Background(), "Selamat pagi")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sb.FileName, "soundboard/"))
	assert.True(t, strings.HasSuffix(sb.FileName, ".mp3"))
	assert.Equal(t, "https://cdn.example.com/"+sb.FileName, sb.AudioURL)
	assert.Equal(t, []byte("mp3-bytes"), store.uploads[sb.FileName])
	assert.Equal(t, "audio/mpeg", store.contentTypes[sb.FileName])

	rows, err := svc.ListSoundboards()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sb.ID, rows[0].ID)
}

func TestCreateSoundboard_RequiresText(t *testing.T) {
	repo := repository.NewSoundboardRepository(newTestDB(t))
	store := newFakeObjectStore()
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	svc := NewSoundboardService(repo, synth, store)

	_, err := svc.CreateSoundboard(context.Background(), "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Zero(t, synth.calls)
}

func TestCreateSoundboard_SynthesisFailureLeavesNoRow(t *testing.T) {
	repo := repository.NewSoundboardRepository(newTestDB(t))
	store := newFakeObjectStore()
	synth := &fakeSynthesizer{err: apperr.ErrUpstream}
	svc := NewSoundboardService(repo, synth, store)

	_, err := svc.CreateSoundboard(context.Background(), "Selamat pagi")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Empty(t, store.uploads)

	rows, err := svc.ListSoundboards()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCreateSoundboard_UploadFailureLeavesNoRow(t *testing.T) {
	repo := repository.NewSoundboardRepository(newTestDB(t))
	store := newFakeObjectStore()
	store.uploadErr = apperr.ErrUpstream
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	svc := NewSoundboardService(repo, synth, store)

	_, err := svc.CreateSoundboard(context.Background(), "Selamat pagi")
	assert.ErrorIs(t, err, apperr.ErrUpstream)

	rows, err := svc.ListSoundboards()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// failingSoundboardRepo 模拟落库失败，用于验证上传对象的补偿清理。
type failingSoundboardRepo struct{}

func (failingSoundboardRepo) Create(*model.Soundboard) error {
	return errors.New("insert failed")
}

func (failingSoundboardRepo) FindAll() ([]model.Soundboard, error) {
	return nil, nil
}

func TestCreateSoundboard_PersistFailureRemovesUploadedAudio(t *testing.T) {
	store := newFakeObjectStore()
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	svc := NewSoundboardService(failingSoundboardRepo{}, synth, store)

	_, err := svc.CreateSoundboard(context.Background(), "Selamat pagi")
	require.Error(t, err)
	require.Len(t, store.removed, 1)
	assert.Contains(t, store.uploads, store.removed[0])
}
