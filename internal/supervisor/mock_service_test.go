// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

var errSimulated = errors.New("simulated failure")

// MockService is a suture.Service whose exit behavior the tree tests control.
// With no failures or exit error configured it blocks until its context ends.
type MockService struct {
	name      string
	starts    atomic.Int32
	stops     atomic.Int32
	failsLeft atomic.Int32
	exitErr   atomic.Pointer[error]
}

func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	if m.failsLeft.Add(-1) >= 0 {
		return errSimulated
	}
	if errp := m.exitErr.Load(); errp != nil {
		return *errp
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetError makes every Serve call return err immediately.
func (m *MockService) SetError(err error) {
	m.exitErr.Store(&err)
}

// SetFailCount makes the next n Serve calls fail with errSimulated.
func (m *MockService) SetFailCount(n int) {
	m.failsLeft.Store(int32(n))
}

func (m *MockService) StartCount() int32 { return m.starts.Load() }

func (m *MockService) StopCount() int32 { return m.stops.Load() }

func (m *MockService) String() string { return m.name }
