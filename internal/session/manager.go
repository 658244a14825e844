// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package session owns one analyzer per client session. The analyzer
// itself is single-threaded; the manager supplies the external mutual
// exclusion its mutations require, one exclusive writer per session.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/netscope-ml/netscope/internal/analyzer"
	"github.com/netscope-ml/netscope/internal/arch"
)

// DefaultID is the session used when a client does not send one. It
// keeps single-user setups working without a session handshake.
const DefaultID = "default"

// ErrUnknownSession is returned for IDs that were never created or have
// been pruned.
var ErrUnknownSession = errors.New("unknown session")

type entry struct {
	mu       sync.Mutex
	analyzer *analyzer.Analyzer
	lastSeen time.Time
}

// Manager maps session IDs to analyzers.
type Manager struct {
	mu       sync.RWMutex
	shape    arch.Shape
	sessions map[string]*entry
}

// NewManager creates a manager whose new sessions start from the given
// input shape.
func NewManager(shape arch.Shape) *Manager {
	return &Manager{
		shape:    shape,
		sessions: make(map[string]*entry),
	}
}

// Create allocates a new session and returns its ID.
func (m *Manager) Create() string {
	id := uuid.New().String()
	m.mu.Lock()
	m.sessions[id] = &entry{
		analyzer: analyzer.New(m.shape),
		lastSeen: time.Now(),
	}
	m.mu.Unlock()
	return id
}

// Do runs fn with exclusive access to the session's analyzer. The
// default session is created lazily; any other unknown ID fails with
// ErrUnknownSession.
func (m *Manager) Do(id string, fn func(*analyzer.Analyzer) error) error {
	if id == "" {
		id = DefaultID
	}

	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		if id != DefaultID {
			return ErrUnknownSession
		}
		m.mu.Lock()
		if e, ok = m.sessions[id]; !ok {
			e = &entry{analyzer: analyzer.New(m.shape)}
			m.sessions[id] = e
		}
		m.mu.Unlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = time.Now()
	return fn(e.analyzer)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Prune drops sessions idle for longer than maxAge and returns how many
// were removed. The default session is never pruned.
func (m *Manager) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.sessions {
		if id == DefaultID {
			continue
		}
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
