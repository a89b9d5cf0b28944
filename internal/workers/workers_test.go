// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that records Run and Stop calls into a shared log.
type mockWorker struct {
	id       int
	runCount int
	log      *[]string
}

func (m *mockWorker) Run() {
	m.runCount++
	if m.log != nil {
		*m.log = append(*m.log, "run", string(rune('0'+m.id)))
	}
}

func (m *mockWorker) Stop() {
	if m.log != nil {
		*m.log = append(*m.log, "stop", string(rune('0'+m.id)))
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Run()
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	var log []string

	ws := NewWorkers(
		&mockWorker{id: 1, log: &log},
		&mockWorker{id: 2, log: &log},
	)
	ws.Run()
	ws.Stop()

	expected := []string{"run", "1", "run", "2", "stop", "2", "stop", "1"}
	if len(log) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%s, got %s", i, v, log[i])
		}
	}
}

func TestWorkers_PoolIsWorker(t *testing.T) {
	var _ Worker = NewPool(1)
}
