package securestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache.db")
	durable, err := NewSQLiteKV(path)
	require.NoError(t, err)
	t.Cleanup(func() { durable.Close() })

	return New(durable, NewMemoryKV(), slog.Default()), path
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	ok := store.SetItem("theme", "dark", Options{})
	require.True(t, ok)

	value, found := store.GetItem("theme")
	require.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestStore_SetItemRejectsNil(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.SetItem("broken", nil, Options{}))

	_, found := store.GetItem("broken")
	assert.False(t, found)
}

func TestStore_SetItemRejectsScriptInjection(t *testing.T) {
	store, _ := newTestStore(t)

	cases := []string{
		`<script>alert(1)</script>`,
		`javascript:alert(1)`,
		`<img onerror=alert(1)>`,
	}

	for _, value := range cases {
		assert.False(t, store.SetItem("evil", value, Options{}), value)
	}
}

func TestStore_ExpiredItemIsRemoved(t *testing.T) {
	store, _ := newTestStore(t)

	now := time.Now()
	store.now = func() time.Time { return now }

	ok := store.SetItem("short", "lived", Options{Expiration: time.Minute})
	require.True(t, ok)

	_, found := store.GetItem("short")
	assert.True(t, found)

	store.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, found = store.GetItem("short")
	assert.False(t, found)

	// Просроченная запись удалена, а не просто скрыта.
	_, inDurable := store.durable.Get(Namespace + "short")
	assert.False(t, inDurable)
}

func TestStore_EncryptedValueObfuscatedAtRest(t *testing.T) {
	store, _ := newTestStore(t)

	ok := store.SetItem("secret", "s3cret-token", Options{Encrypt: true})
	require.True(t, ok)

	raw, found := store.durable.Get(Namespace + "secret")
	require.True(t, found)
	assert.NotContains(t, raw, "s3cret-token")

	value, found := store.GetItem("secret")
	require.True(t, found)
	assert.Equal(t, "s3cret-token", value)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	durable, err := NewSQLiteKV(path)
	require.NoError(t, err)

	first := New(durable, NewMemoryKV(), slog.Default())
	require.True(t, first.SetItem("lang", "ru", Options{}))
	require.NoError(t, durable.Close())

	reopened, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()

	second := New(reopened, NewMemoryKV(), slog.Default())
	value, found := second.GetItem("lang")
	require.True(t, found)
	assert.Equal(t, "ru", value)
}

func TestStore_ClearKeepsForeignKeys(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.SetItem("theme", "dark", Options{}))
	require.NoError(t, store.durable.Set("other_app_key", "untouched"))

	store.Clear()

	_, found := store.GetItem("theme")
	assert.False(t, found)

	value, ok := store.durable.Get("other_app_key")
	assert.True(t, ok)
	assert.Equal(t, "untouched", value)
}

func TestStore_Stats(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.SetItem("a", "one", Options{}))
	require.True(t, store.SetItem("b", "two", Options{Encrypt: true}))

	stats := store.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Greater(t, stats.TotalBytes, 0)
}

func TestStore_SecureTokenHelpers(t *testing.T) {
	store, _ := newTestStore(t)

	require.True(t, store.SetSecureToken("auth", "abc123"))

	token, ok := store.GetSecureToken("auth")
	require.True(t, ok)
	assert.Equal(t, "abc123", token)

	store.RemoveSecureToken("auth")

	_, ok = store.GetSecureToken("auth")
	assert.False(t, ok)
}

func TestStore_SecureTokenExpiresAfterTTL(t *testing.T) {
	store, _ := newTestStore(t)

	now := time.Now()
	store.now = func() time.Time { return now }

	require.True(t, store.SetSecureToken("auth", "abc123"))

	store.now = func() time.Time { return now.Add(TokenTTL + time.Second) }

	_, ok := store.GetSecureToken("auth")
	assert.False(t, ok)
}

func TestStore_UnreadableRecordTreatedAsAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.durable.Set(Namespace+"corrupt", "{not json"))

	_, found := store.GetItem("corrupt")
	assert.False(t, found)
}
