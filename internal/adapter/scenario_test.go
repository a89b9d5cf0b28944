package adapter

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/osphor/internal/config"
	myHTTP "github.com/MKhiriev/osphor/internal/handler/http"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/MKhiriev/osphor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs the real router, services and bbolt store behind
// httptest so the adapter is exercised against the actual wire format.
func startServer(t *testing.T) ServerAdapter {
	t.Helper()
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`
fields:
  - name: level
    type: int
    default: 1
  - name: title
    type: string
    default: novice
`), 0o600))

	db, err := store.Open(filepath.Join(dir, "osphor.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	pool := workers.NewPool(2)
	pool.Run()
	t.Cleanup(pool.Stop)

	services, err := service.NewServices(
		store.NewStorages(db, logger.Nop()),
		schema.NewFileLoader(schemaPath, schema.WithCache()),
		pool,
		config.StructuredConfig{
			App:     config.App{TokenSignKey: "adapter-key", TokenIssuer: "osphor", TokenDuration: time.Hour, Version: "test"},
			Hashing: config.Hashing{Iterations: 1, MemoryKiB: 8, Parallelism: 1, SaltLength: 16, KeyLength: 32, Workers: 2},
		},
		models.NewAppBuildInfo("", "", ""),
		logger.Nop(),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestScenario_RegisterLoginValidate(t *testing.T) {
	a := startServer(t)
	ctx := context.Background()

	created, err := a.Register(ctx, models.Player{
		Username: "alice",
		Display:  "Alice",
		Data:     map[string]models.Value{"level": models.IntValue(7), "cheat": models.BoolValue(true)},
	}, "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Display)
	assert.Equal(t, map[string]models.Value{
		"level": models.IntValue(7),
		"title": models.StringValue("novice"),
	}, created.Data)

	_, err = a.Register(ctx, models.Player{Username: "alice"}, "pw2")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = a.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())

	token, err := a.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	validated, err := a.Validate(ctx, token)
	require.NoError(t, err)
	require.True(t, validated.Valid)
	assert.Equal(t, "alice", validated.Claim.Subject)

	invalid, err := a.Validate(ctx, token[:len(token)-2])
	require.NoError(t, err)
	assert.False(t, invalid.Valid)

	me, err := a.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}

func TestScenario_PlayersListing(t *testing.T) {
	a := startServer(t)
	ctx := context.Background()

	_, err := a.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	for _, name := range []string{"bob", "alice"} {
		_, err := a.Register(ctx, models.Player{Username: name}, "secret")
		require.NoError(t, err)
	}

	players, err := a.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	bob, err := a.GetPlayer(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Value{
		"level": models.IntValue(1),
		"title": models.StringValue("novice"),
	}, bob.Data)

	_, err = a.GetPlayer(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Register(ctx, models.Player{Username: "bad name"}, "secret")
	assert.ErrorIs(t, err, ErrBadRequest)
}
