package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/handler"
	myHTTP "github.com/MKhiriev/osphor/internal/handler/http"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	runs, stops atomic.Int32
}

func (w *countingWorker) Run()  { w.runs.Add(1) }
func (w *countingWorker) Stop() { w.stops.Add(1) }

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_Errors(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	_, err := NewServer(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(&handler.Handlers{}, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(newTestHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoListenAddress)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	worker := &countingWorker{}
	srv, err := NewServer(newTestHandlers(), workers.NewWorkers(worker), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	require.NoError(t, s.httpServer.listen())
	addr := s.httpServer.addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Root Instances of Osphor API", string(body))
	assert.Equal(t, int32(1), worker.runs.Load())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, int32(1), worker.stops.Load())

	_, err = http.Get("http://" + addr + "/api")
	assert.Error(t, err)
}

func TestServer_RunFailsWhenAddressIsTaken(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	worker := &countingWorker{}
	srv, err := NewServer(newTestHandlers(), workers.NewWorkers(worker), config.Server{
		HTTPAddress: taken.Addr().String(),
	}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())

	assert.Error(t, err)
	assert.Zero(t, worker.runs.Load())
}
