package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"
)

// ErrNoActiveSnapshot is returned when Commit or Rollback is called on a unit
// of work that has no snapshot in progress.
var ErrNoActiveSnapshot = errors.New("no active snapshot transaction")

// Store owns the snapshot file and its single mutation lock. A unit of work
// holds the lock from Begin until Commit or Rollback, so at most one writer
// rewrites the file at a time. Store itself also implements
// ports.OrderRepository for lock-per-call access on read paths that do not
// need a transaction.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a snapshot store backed by the given file path. The parent
// directory is created if missing; the file itself appears on first commit.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("orders file path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory %q: %w", dir, err)
		}
	}

	return &Store{path: path}, nil
}

// load reads the snapshot file into memory. The caller must hold mu.
// A missing or empty file reads as an empty collection. Both the wrapped
// form {"orders":[...]} and a bare top-level array are accepted, so snapshots
// exported by earlier versions of the service remain readable.
func (s *Store) load() ([]orderDTO, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []orderDTO{}, nil
		}
		return nil, fmt.Errorf("read orders snapshot %q: %w", s.path, err)
	}

	if len(data) == 0 {
		return []orderDTO{}, nil
	}

	var snapshot snapshotDTO
	if err = json.Unmarshal(data, &snapshot); err == nil {
		if snapshot.Orders == nil {
			snapshot.Orders = []orderDTO{}
		}
		return snapshot.Orders, nil
	}

	var bare []orderDTO
	if bareErr := json.Unmarshal(data, &bare); bareErr == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("decode orders snapshot %q: %w", s.path, err)
}

// save rewrites the snapshot file. The caller must hold mu.
func (s *Store) save(orders []orderDTO) error {
	if orders == nil {
		orders = []orderDTO{}
	}

	data, err := json.MarshalIndent(snapshotDTO{Orders: orders}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders snapshot: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write orders snapshot %q: %w", s.path, err)
	}

	return nil
}

// Add persists a new order, taking the store lock for the duration of the
// load-append-save cycle.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return err
	}

	return s.save(append(orders, fromDomain(aggregate)))
}

// Update rewrites the stored record matching the aggregate's id.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return err
	}

	if !replaceByID(orders, fromDomain(aggregate)) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return s.save(orders)
}

// Get retrieves an order by id.
func (s *Store) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}

	return findByID(orders, id)
}

// GetByPickupCode retrieves the order whose pickup code matches exactly.
func (s *Store) GetByPickupCode(_ context.Context, code string) (*order.Order, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}

	return findByPickupCode(orders, code)
}

// GetAll retrieves every stored order, oldest first.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}

	return toDomainAll(orders)
}

// RemoveAll deletes the entire collection.
func (s *Store) RemoveAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save([]orderDTO{})
}

// FileUnitOfWorkFactory creates snapshot-backed unit of work instances.
type FileUnitOfWorkFactory struct {
	store *Store
}

// NewFileUnitOfWorkFactory creates a factory bound to the given store.
func NewFileUnitOfWorkFactory(store *Store) *FileUnitOfWorkFactory {
	return &FileUnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each instance performs one
// lock-load-mutate-save cycle against the snapshot file.
func (f *FileUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &FileUnitOfWork{store: f.store}
}

// FileUnitOfWork implements a business transaction over the snapshot file.
// Begin takes the store lock and loads the file into memory; repository
// operations mutate the in-memory copy; Commit writes the file back and
// releases the lock; Rollback discards the copy and releases the lock.
type FileUnitOfWork struct {
	store  *Store
	orders []orderDTO
	active bool
}

// Begin takes the store's mutation lock and loads the current snapshot.
// Calling Begin on an already-active unit of work is a no-op.
func (uow *FileUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()

	orders, err := uow.store.load()
	if err != nil {
		uow.store.mu.Unlock()
		return err
	}

	uow.orders = orders
	uow.active = true
	return nil
}

// Commit writes the mutated snapshot back to disk and releases the lock.
// Returns ErrNoActiveSnapshot if Begin was not called or the unit of work
// already completed.
func (uow *FileUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveSnapshot
	}

	err := uow.store.save(uow.orders)
	uow.orders = nil
	uow.active = false
	uow.store.mu.Unlock()
	return err
}

// Rollback discards the in-memory snapshot and releases the lock. Safe to
// defer after Commit; the second completion returns ErrNoActiveSnapshot,
// which deferred callers ignore.
func (uow *FileUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveSnapshot
	}

	uow.orders = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns a repository bound to this unit of work's snapshot.
func (uow *FileUnitOfWork) OrderRepository() ports.OrderRepository {
	return &fileOrderRepository{uow: uow}
}

// fileOrderRepository operates on the in-memory snapshot held by its unit of
// work. Changes become durable only when the unit of work commits.
type fileOrderRepository struct {
	uow *FileUnitOfWork
}

func (r *fileOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveSnapshot
	}

	r.uow.orders = append(r.uow.orders, fromDomain(aggregate))
	return nil
}

func (r *fileOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveSnapshot
	}

	if !replaceByID(r.uow.orders, fromDomain(aggregate)) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

func (r *fileOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveSnapshot
	}

	return findByID(r.uow.orders, id)
}

func (r *fileOrderRepository) GetByPickupCode(_ context.Context, code string) (*order.Order, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if !r.uow.active {
		return nil, ErrNoActiveSnapshot
	}

	return findByPickupCode(r.uow.orders, code)
}

func (r *fileOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveSnapshot
	}

	return toDomainAll(r.uow.orders)
}

func (r *fileOrderRepository) RemoveAll(_ context.Context) error {
	if !r.uow.active {
		return ErrNoActiveSnapshot
	}

	r.uow.orders = []orderDTO{}
	return nil
}

func replaceByID(orders []orderDTO, dto orderDTO) bool {
	for i := range orders {
		if orders[i].ID == dto.ID {
			orders[i] = dto
			return true
		}
	}
	return false
}

func findByID(orders []orderDTO, id kernel.OrderID) (*order.Order, error) {
	for i := range orders {
		if orders[i].ID == id.String() {
			return toDomain(orders[i])
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func findByPickupCode(orders []orderDTO, code string) (*order.Order, error) {
	for i := range orders {
		if orders[i].PickupCode == code {
			return toDomain(orders[i])
		}
	}
	return nil, errs.NewObjectNotFoundError("order", code)
}

func toDomainAll(orders []orderDTO) ([]*order.Order, error) {
	result := make([]*order.Order, 0, len(orders))
	for i := range orders {
		o, err := toDomain(orders[i])
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}
