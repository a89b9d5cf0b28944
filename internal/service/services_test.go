package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/MKhiriev/osphor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationServices wires real services over a temp bbolt file and a
// cheap argon2 profile.
func newIntegrationServices(t *testing.T) *Services {
	t.Helper()
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("fields:\n  - name: level\n    type: int\n    default: 1\n"), 0o600))

	db, err := store.Open(filepath.Join(dir, "osphor.db"), logger.Nop(), store.WithWriteRetry(3, time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	pool := workers.NewPool(4)
	pool.Run()
	t.Cleanup(pool.Stop)

	cfg := config.StructuredConfig{
		App: testAppConfig,
		Hashing: config.Hashing{
			Iterations:  1,
			MemoryKiB:   8,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
			Workers:     4,
		},
	}

	services, err := NewServices(store.NewStorages(db, logger.Nop()), schema.NewFileLoader(schemaPath), pool, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, nil, nil, config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestServices_RegisterLoginValidate(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	player, err := s.AuthService.Register(ctx, registerRequest("alice", "pw1", `{}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Value{"level": models.IntValue(1)}, player.Data)

	stored, err := s.PlayerService.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, player, stored)

	_, err = s.AuthService.Register(ctx, registerRequest("alice", "other", ""))
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = s.AuthService.Login(ctx, loginRequest("alice", "wrong"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := s.AuthService.Login(ctx, loginRequest("alice", "pw1"))
	require.NoError(t, err)

	parsed, err := s.AuthService.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Claim.Subject)
}

func TestServices_ConcurrentRegistrationSameUsername(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = s.AuthService.Register(ctx, registerRequest("alice", "pw1", ""))
		}()
	}
	close(start)
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, store.ErrConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
}

func TestServices_BulkList(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	for _, name := range []string{"bob", "alice"} {
		_, err := s.AuthService.Register(ctx, registerRequest(name, "pw-"+name, ""))
		require.NoError(t, err)
	}

	players, err := s.PlayerService.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.ElementsMatch(t, []string{"alice", "bob"}, []string{players[0].Username, players[1].Username})
}
