package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bicara-go/internal/apperr"
	"bicara-go/internal/repository"
)

func newHistoryService(t *testing.T) (HistoryService, repository.HistoryRepository) {
	t.Helper()
	repo := repository.NewHistoryRepository(newTestDB(t))
	return NewHistoryService(repo), repo
}

func TestCreateIdentity_SucceedsOnceThenConflicts(t *testing.T) {
	svc, _ := newHistoryService(t)

	entry, err := svc.CreateIdentity("budi@example.com", "Riwayat Budi")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	require.NotNil(t, entry.Email)
	assert.Equal(t, "budi@example.com", *entry.Email)

	_, err = svc.CreateIdentity("budi@example.com", "Riwayat Lain")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateIdentity_RequiresTitleAndEmail(t *testing.T) {
	svc, _ := newHistoryService(t)

	_, err := svc.CreateIdentity("", "judul")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.CreateIdentity("budi@example.com", "  ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAttachMessage_NotFoundWithoutIdentity(t *testing.T) {
	svc, repo := newHistoryService(t)

	_, err := svc.AttachMessage("tidak-ada@example.com", "halo", false)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// 失败时不应产生任何写入
	msgs, err := repo.FindMessagesByEmail("tidak-ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestAttachMessage_InsertsAndRefreshesIdentity(t *testing.T) {
	svc, repo := newHistoryService(t)

	_, err := svc.CreateIdentity("siti@example.com", "Riwayat Siti")
	require.NoError(t, err)

	entry, err := svc.AttachMessage("siti@example.com", "Ini adalah isi pesan", true)
	require.NoError(t, err)
	require.NotNil(t, entry.Message)
	assert.Equal(t, "Ini adalah isi pesan", *entry.Message)
	require.NotNil(t, entry.IsSpeechToText)
	assert.True(t, *entry.IsSpeechToText)

	msgs, err := repo.FindMessagesByEmail("siti@example.com")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ini adalah isi pesan", msgs[0].Message)

	// 第二条消息追加而不是覆盖
	_, err = svc.AttachMessage("siti@example.com", "pesan kedua", false)
	require.NoError(t, err)
	msgs, err = repo.FindMessagesByEmail("siti@example.com")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestCreateEntry_AddressableByGeneratedID(t *testing.T) {
	svc, _ := newHistoryService(t)

	msg := "Ini adalah isi pesan"
	entry, err := svc.CreateEntry("Contoh Judul", &msg)
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)

	detail, err := svc.GetByKey(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contoh Judul", detail.Entry.Title)
	require.NotNil(t, detail.Entry.Message)
	assert.Equal(t, msg, *detail.Entry.Message)

	_, err = svc.GetByKey("kunci-yang-tidak-ada")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetByKey_ResolvesEmailWithMessages(t *testing.T) {
	svc, _ := newHistoryService(t)

	_, err := svc.CreateIdentity("budi@example.com", "Riwayat Budi")
	require.NoError(t, err)
	_, err = svc.AttachMessage("budi@example.com", "halo", false)
	require.NoError(t, err)

	detail, err := svc.GetByKey("budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Riwayat Budi", detail.Entry.Title)
	assert.Len(t, detail.Messages, 1)
}

func TestDeleteByKey_CascadesMessages(t *testing.T) {
	svc, repo := newHistoryService(t)

	_, err := svc.CreateIdentity("budi@example.com", "Riwayat Budi")
	require.NoError(t, err)
	_, err = svc.AttachMessage("budi@example.com", "halo", false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByKey("budi@example.com"))

	_, err = svc.GetByKey("budi@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	msgs, err := repo.FindMessagesByEmail("budi@example.com")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	err = svc.DeleteByKey("budi@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListAll_EmptyListWithoutError(t *testing.T) {
	svc, _ := newHistoryService(t)

	entries, err := svc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListAll_ReturnsCreatedEntries(t *testing.T) {
	svc, _ := newHistoryService(t)

	first, err := svc.CreateEntry("pertama", nil)
	require.NoError(t, err)

	entries, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID)
}
