package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/database"
)

// Status is the lifecycle state of an Accessor.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Store is the part of the store client the content layer depends on.
// *database.Table satisfies it.
type Store[T any] interface {
	ReadAll(ctx context.Context, order database.Order) ([]T, error)
	InsertOne(ctx context.Context, record *T) error
}

// Snapshot is what a consumer renders: {data, loading, error}.
type Snapshot[T any] struct {
	Data    []T     `json:"data"`
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
	Status  Status  `json:"status"`
}

// AccessorConfig fixes the read contract of one entity type.
type AccessorConfig[T any] struct {
	Name  string
	Order database.Order
	// Fallback supplies the static list shown when a successful read is empty.
	Fallback func() []T
	// Present, if set, derives display fields on every record of a snapshot.
	Present func(T) T
	// Key identifies a record. A record prepended while the fetch is in
	// flight is kept when the fetch resolves unless the result already
	// holds a record with the same key.
	Key func(T) string
}

// Accessor owns the read lifecycle of one entity type for one mount. It
// fetches exactly once; after that the state is terminal, apart from records
// the admin flow prepends.
type Accessor[T any] struct {
	cfg    AccessorConfig[T]
	logger zerolog.Logger

	mu        sync.RWMutex
	status    Status
	data      []T
	errMsg    string
	unmounted bool

	cancel    context.CancelFunc
	done      chan struct{}
	closeDone sync.Once
}

// Mount starts the single fetch in the background and returns immediately
// in the loading state.
func Mount[T any](ctx context.Context, store Store[T], cfg AccessorConfig[T]) *Accessor[T] {
	fetchCtx, cancel := context.WithCancel(ctx)
	a := &Accessor[T]{
		cfg:    cfg,
		logger: log.With().Str("accessor", cfg.Name).Logger(),
		status: StatusLoading,
		data:   []T{},
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()
		records, err := store.ReadAll(fetchCtx, cfg.Order)
		a.resolve(records, err)
	}()

	return a
}

func (a *Accessor[T]) resolve(records []T, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.unmounted {
		a.logger.Debug().Err(err).Msg("discarding fetch result after unmount")
		return
	}

	if err != nil {
		a.status = StatusFailed
		a.errMsg = err.Error()
		a.logger.Warn().Err(err).Str("order", a.cfg.Order.String()).Msg("fetch failed")
	} else {
		if records == nil {
			records = []T{}
		}
		a.status = StatusReady
		a.data = a.keepPrepended(records)
		a.errMsg = ""
		a.logger.Debug().Int("count", len(records)).Msg("fetch resolved")
	}
	a.closeDone.Do(func() { close(a.done) })
}

// keepPrepended puts the records prepended before the fetch resolved in
// front of records. Only Prepend writes to a.data while loading. The caller
// holds a.mu.
func (a *Accessor[T]) keepPrepended(records []T) []T {
	if len(a.data) == 0 {
		return records
	}

	fetched := make(map[string]struct{}, len(records))
	if a.cfg.Key != nil {
		for _, record := range records {
			fetched[a.cfg.Key(record)] = struct{}{}
		}
	}

	merged := make([]T, 0, len(a.data)+len(records))
	for _, record := range a.data {
		if a.cfg.Key != nil {
			if _, ok := fetched[a.cfg.Key(record)]; ok {
				continue
			}
		}
		merged = append(merged, record)
	}
	return append(merged, records...)
}

// Unmount cancels an in-flight fetch. A result that arrives afterwards is
// dropped and the state stays as it was.
func (a *Accessor[T]) Unmount() {
	a.mu.Lock()
	a.unmounted = true
	a.mu.Unlock()

	a.cancel()
	a.closeDone.Do(func() { close(a.done) })
}

// Done is closed once the fetch has resolved or the accessor was unmounted.
func (a *Accessor[T]) Done() <-chan struct{} {
	return a.done
}

func (a *Accessor[T]) Name() string {
	return a.cfg.Name
}

func (a *Accessor[T]) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Snapshot returns the current state. While ready, an empty list is replaced
// wholesale by the fallback list; loading and failed states never fall back.
func (a *Accessor[T]) Snapshot() Snapshot[T] {
	a.mu.RLock()
	status := a.status
	data := make([]T, len(a.data))
	copy(data, a.data)
	errMsg := a.errMsg
	a.mu.RUnlock()

	if status == StatusReady {
		data = Resolve(data, a.cfg.Fallback)
	}
	if a.cfg.Present != nil {
		for i := range data {
			data[i] = a.cfg.Present(data[i])
		}
	}

	snapshot := Snapshot[T]{
		Data:    data,
		Loading: status == StatusLoading,
		Status:  status,
	}
	if errMsg != "" {
		snapshot.Error = &errMsg
	}
	return snapshot
}

// Prepend puts a freshly persisted record at the front of the list. If the
// fetch has not resolved yet the record stays in front of its result.
func (a *Accessor[T]) Prepend(record T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data := make([]T, 0, len(a.data)+1)
	data = append(data, record)
	a.data = append(data, a.data...)
}
