// Package storage provides the single-key persistence used by the daily
// quote. Browser builds use window.localStorage; native builds use a JSON
// file; tests use Memory.
package storage

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrUnavailable is returned when the backing store cannot be reached,
	// e.g. storage disabled by browser privacy settings.
	ErrUnavailable = errors.New("storage: unavailable")
)

// Store is a string key-value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Broken is a Store whose every operation fails with Err. It stands in for
// storage that is disabled or throws.
type Broken struct {
	Err error
}

func (b Broken) err() error {
	if b.Err != nil {
		return b.Err
	}
	return ErrUnavailable
}

func (b Broken) Get(string) (string, error) { return "", b.err() }
func (b Broken) Set(string, string) error   { return b.err() }
func (b Broken) Delete(string) error        { return b.err() }
