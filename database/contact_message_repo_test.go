package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContactMessagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).ContactMessageRepo()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := models.ContactMessage{Name: "A", Email: "a@example.com", Subject: "old", Message: "m", CreatedAt: base}
	newer := models.ContactMessage{Name: "B", Email: "b@example.com", Subject: "new", Message: "m", CreatedAt: base.Add(time.Hour), IsRead: true}
	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Subject)
	assert.Equal(t, "old", got[1].Subject)
	assert.False(t, got[0].IsRead)

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)
}

func TestContactMessageReadAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).ContactMessageRepo()

	msg := models.ContactMessage{Name: "A", Email: "a@example.com", Subject: "hi", Message: "hello"}
	require.NoError(t, repo.Create(ctx, &msg))

	require.NoError(t, repo.SetRead(ctx, msg.ID, true))
	stored, err := repo.FindByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, repo.Delete(ctx, msg.ID))
	assert.ErrorIs(t, repo.Delete(ctx, msg.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetRead(ctx, msg.ID, false), gorm.ErrRecordNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
