package workflow

import (
	"context"
	"errors"
	"testing"

	"foundation-backend/config"
	"foundation-backend/models"
	"foundation-backend/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newNavEditor(t *testing.T) *Editor[models.NavbarItem] {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.AutoMigrate(db))

	return New[models.NavbarItem](services.NewNavbarService(db), Options[models.NavbarItem]{
		ID: func(n models.NavbarItem) uint { return n.ID },
		Validate: func(n models.NavbarItem) error {
			if n.Label == "" {
				return errors.New("label is required")
			}
			return nil
		},
		Fields: func(n models.NavbarItem) []string { return []string{n.Label} },
	})
}

func TestEditorCreateEditDelete(t *testing.T) {
	ctx := context.Background()
	e := newNavEditor(t)
	require.NoError(t, e.Load(ctx))
	assert.Equal(t, Idle, e.Mode())
	assert.Empty(t, e.Items())

	draft := e.BeginCreate()
	assert.Equal(t, Editing, e.Mode())

	// ตรวจไม่ผ่าน ฟอร์มยังเปิดอยู่
	assert.Error(t, e.Save(ctx))
	assert.Equal(t, Editing, e.Mode())
	assert.NotNil(t, e.Draft())

	draft.Label = "หน้าแรก"
	draft.Href = "/"
	require.NoError(t, e.Save(ctx))
	assert.Equal(t, Idle, e.Mode())
	assert.Nil(t, e.Draft())
	require.Len(t, e.Items(), 1)

	id := e.Items()[0].ID
	require.NoError(t, e.Select(id))
	assert.Equal(t, Viewing, e.Mode())

	edit, err := e.BeginEdit(id)
	require.NoError(t, err)
	edit.Label = "Home"
	assert.Equal(t, "หน้าแรก", e.Items()[0].Label)
	assert.ErrorIs(t, e.Select(id), ErrEditing)

	require.NoError(t, e.Save(ctx))
	assert.Equal(t, "Home", e.Items()[0].Label)
	assert.Equal(t, 1, e.Items()[0].SortOrder)

	assert.ErrorIs(t, e.Delete(ctx, id, false), ErrNotConfirmed)
	assert.Len(t, e.Items(), 1)

	require.NoError(t, e.Select(id))
	require.NoError(t, e.Delete(ctx, id, true))
	assert.Empty(t, e.Items())
	assert.Zero(t, e.Selected())
	assert.Equal(t, Idle, e.Mode())
}

func TestEditorCancel(t *testing.T) {
	ctx := context.Background()
	e := newNavEditor(t)
	e.BeginCreate().Label = "x"
	require.NoError(t, e.Save(ctx))
	id := e.Items()[0].ID

	e.BeginCreate()
	e.Cancel()
	assert.Equal(t, Idle, e.Mode())
	assert.Nil(t, e.Draft())

	require.NoError(t, e.Select(id))
	_, err := e.BeginEdit(id)
	require.NoError(t, err)
	e.Cancel()
	assert.Equal(t, Viewing, e.Mode())

	assert.ErrorIs(t, e.Save(ctx), ErrNotEditing)
	assert.ErrorIs(t, e.Select(999), ErrNotInList)
	_, err = e.BeginEdit(999)
	assert.ErrorIs(t, err, ErrNotInList)
}

func TestEditorFilter(t *testing.T) {
	ctx := context.Background()
	e := newNavEditor(t)
	for _, label := range []string{"ข่าวสาร", "ติดต่อเรา", "ข่าวประชาสัมพันธ์"} {
		e.BeginCreate().Label = label
		require.NoError(t, e.Save(ctx))
	}
	assert.Len(t, e.Filter("ข่าว"), 2)
	assert.Len(t, e.Filter(""), 3)
	assert.Empty(t, e.Filter("zzz"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "viewing", Viewing.String())
	assert.Equal(t, "editing", Editing.String())
}
