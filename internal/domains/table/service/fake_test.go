package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"resto/internal/domains/table/model"
	"resto/shared/cache"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

var errStore = errors.New("store unavailable")

// memoryStore is an in-memory repository.Table backed by maps.
type memoryStore struct {
	mu       sync.Mutex
	catalog  map[string]int
	states   map[string]model.TableState
	history  []model.TableStateHistory
	failNext bool
}

func newMemoryStore(catalog map[string]int) *memoryStore {
	return &memoryStore{
		catalog: catalog,
		states:  map[string]model.TableState{},
	}
}

func (m *memoryStore) seed(state model.TableState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state.TableName] = state
}

func (m *memoryStore) state(tableName string) (model.TableState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[tableName]

	return state, ok
}

func (m *memoryStore) historyLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.history)
}

func (m *memoryStore) rowsOnDay(start, end time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0

	for _, state := range m.states {
		if !state.Timestamp.Before(start) && state.Timestamp.Before(end) {
			total++
		}
	}

	return total
}

func (m *memoryStore) fail() error {
	if m.failNext {
		m.failNext = false

		return errStore
	}

	return nil
}

func (m *memoryStore) CatalogExistTx(_ context.Context, _ *sqlx.Tx, tableName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail(); err != nil {
		return false, err
	}

	_, ok := m.catalog[tableName]

	return ok, nil
}

func (m *memoryStore) CountByStatus(ctx context.Context, status model.Status, start, end time.Time) (int, error) {
	return m.CountByStatusTx(ctx, nil, status, start, end)
}

func (m *memoryStore) CountByStatusTx(ctx context.Context, tx *sqlx.Tx, status model.Status, start, end time.Time) (int, error) {
	listings, err := m.ListByStatusTx(ctx, tx, status, start, end)

	return len(listings), err
}

func (m *memoryStore) ListByStatus(ctx context.Context, status model.Status, start, end time.Time) ([]model.TableListing, error) {
	return m.ListByStatusTx(ctx, nil, status, start, end)
}

func (m *memoryStore) ListByStatusTx(_ context.Context, _ *sqlx.Tx, status model.Status, start, end time.Time) ([]model.TableListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail(); err != nil {
		return nil, err
	}

	listings := []model.TableListing{}

	for _, state := range m.states {
		if state.TableStatus != status || state.Timestamp.Before(start) || !state.Timestamp.Before(end) {
			continue
		}

		capacity, ok := m.catalog[state.TableName]
		if !ok {
			continue
		}

		listings = append(listings, model.TableListing{
			TableName:    state.TableName,
			SeatCapacity: capacity,
			GuestCount:   state.GuestCount,
			TableStatus:  state.TableStatus,
		})
	}

	slices.SortFunc(listings, func(a, b model.TableListing) int {
		return strings.Compare(a.TableName, b.TableName)
	})

	return listings, nil
}

func (m *memoryStore) UpsertStateTx(_ context.Context, _ *sqlx.Tx, state model.TableState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail(); err != nil {
		return err
	}

	m.states[state.TableName] = state

	return nil
}

func (m *memoryStore) InsertHistoryTx(_ context.Context, _ *sqlx.Tx, history model.TableStateHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, history)

	return nil
}

// immediateTx runs the unit of work without a real transaction.
type immediateTx struct{}

func (immediateTx) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

// memoryCache is an in-memory cache.RedisCache storing JSON values.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.values[key]

	return ok
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = raw

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	raw, ok := c.values[key]
	c.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	return json.Unmarshal(raw, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, key)

	return nil
}

func (c *memoryCache) Clear(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.values {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.values, key)
		}
	}

	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var value int64

	if raw, ok := c.values[key]; ok {
		if err := json.Unmarshal(raw, &value); err != nil {
			return 0, err
		}
	}

	value++
	c.values[key] = []byte(strconv.FormatInt(value, 10))

	return value, nil
}

// interleavedStore runs during once, right after the first non-transactional count
// has read the database and before the service returns.
type interleavedStore struct {
	*memoryStore
	once   sync.Once
	during func()
}

func (s *interleavedStore) CountByStatus(ctx context.Context, status model.Status, start, end time.Time) (int, error) {
	count, err := s.memoryStore.CountByStatus(ctx, status, start, end)
	s.once.Do(s.during)

	return count, err
}
