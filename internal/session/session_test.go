package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/models"
)

// initTestConfig points the config layer at a throwaway file
func initTestConfig(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "admin.yaml")
	content := []byte("server:\n  url: http://localhost:5000\n  timeout: 30s\nformat:\n  default: table\n  colors: false\n")
	require.NoError(t, os.WriteFile(path, content, 0600))
	require.NoError(t, config.Initialize(path))
}

func TestSetPersistsTokenAndUserTogether(t *testing.T) {
	initTestConfig(t)

	store := NewFileStore()
	require.False(t, store.Authenticated())

	user := models.User{ID: "u1", Name: "Admin", Mobile: "9999999999", Role: "admin"}
	require.NoError(t, store.Set("jwt-token", user))

	require.True(t, store.Authenticated())
	require.Equal(t, "jwt-token", store.Token())
	require.Equal(t, "Admin", store.User().Name)

	// A fresh store sees the persisted session.
	restored := NewFileStore()
	require.True(t, restored.Authenticated())
	require.Equal(t, "jwt-token", restored.Token())
	require.Equal(t, "9999999999", restored.User().Mobile)
}

func TestClearRemovesBothHalves(t *testing.T) {
	initTestConfig(t)

	store := NewFileStore()
	require.NoError(t, store.Set("jwt-token", models.User{ID: "u1", Name: "Admin"}))
	require.NoError(t, store.Clear())

	require.False(t, store.Authenticated())
	require.Empty(t, store.Token())
	require.Nil(t, store.User())

	restored := NewFileStore()
	require.False(t, restored.Authenticated())
}

func TestSetRejectsEmptyToken(t *testing.T) {
	initTestConfig(t)

	store := NewFileStore()
	require.Error(t, store.Set("", models.User{ID: "u1"}))
	require.False(t, store.Authenticated())
}

func TestTokenWithoutProfileIsNoSession(t *testing.T) {
	initTestConfig(t)

	// Simulate a config file holding a token but no profile.
	require.NoError(t, config.UpdateAuth("orphan-token", ""))

	store := NewFileStore()
	require.False(t, store.Authenticated())
	require.Empty(t, store.Token())
}

func TestUserReturnsCopy(t *testing.T) {
	initTestConfig(t)

	store := NewFileStore()
	require.NoError(t, store.Set("jwt-token", models.User{ID: "u1", Name: "Admin"}))

	u := store.User()
	u.Name = "Mutated"
	require.Equal(t, "Admin", store.User().Name)
}
