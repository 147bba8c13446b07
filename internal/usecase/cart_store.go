package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
)

// CartStore owns the ordered line items of one scope. The in-memory slice
// is authoritative; every mutation writes a full snapshot fire-and-forget,
// and a failed write only degrades durability, never the operation.
// The same instance serves every request for its scope, so all access goes
// through the mutex.
type CartStore struct {
	scope   string
	catalog CatalogProvider
	snaps   CartSnapshots
	log     *slog.Logger

	mu     sync.Mutex
	items  []domain.LineItem
	lastID int64
}

// AddItemInput mirrors the add-to-cart form: product, package, unit price
// as quoted at selection time, quantity and the buyer's game account.
type AddItemInput struct {
	ProductID    string
	PackageID    string
	PackageLabel string
	UnitPrice    int64
	Quantity     int
	AccountID    string
	ServerID     string
}

// OpenCartStore restores the scope's last persisted cart. Absent or
// corrupt snapshots come back as an empty cart, never as an error.
func OpenCartStore(ctx context.Context, scope string, catalog CatalogProvider, snaps CartSnapshots, log *slog.Logger) *CartStore {
	s := &CartStore{scope: scope, catalog: catalog, snaps: snaps, log: log}
	items, err := snaps.Load(ctx, scope)
	if err != nil {
		log.Warn("cart snapshot unreadable, starting empty", "scope", scope, "err", err)
		return s
	}
	s.items = items
	for _, it := range items {
		if it.ID > s.lastID {
			s.lastID = it.ID
		}
	}
	return s
}

// Add appends a new line item. Returns ok=false (and leaves the cart
// untouched) when the product cannot be resolved against the catalog.
// Identical selections are never merged; each add is its own line.
func (s *CartStore) Add(ctx context.Context, in AddItemInput) (domain.LineItem, bool) {
	product, ok := s.catalog.GetProduct(ctx, in.ProductID)
	if !ok {
		return domain.LineItem{}, false
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.LineItem{
		ID:           s.nextID(),
		ProductID:    in.ProductID,
		ProductTitle: product.Title,
		ProductImage: product.Image,
		PackageID:    in.PackageID,
		PackageLabel: in.PackageLabel,
		UnitPrice:    in.UnitPrice,
		Quantity:     qty,
		AccountID:    in.AccountID,
		ServerID:     in.ServerID,
	}
	s.items = append(s.items, item)
	s.persist(ctx)
	return item, true
}

// Remove drops the line with the given id; unknown ids are a no-op.
func (s *CartStore) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// List returns the items in insertion order. The slice is a copy; callers
// cannot mutate the cart through it.
func (s *CartStore) List() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the number of line items, not the summed quantity. Drives the
// cart badge.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Total is the cart grand total in minor currency units.
func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.items)
}

// nextID hands out epoch-millisecond ids, bumped past the last one when
// two adds land within the same millisecond. Caller holds mu.
func (s *CartStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes the snapshot. Caller holds mu, which also keeps snapshot
// writes ordered.
func (s *CartStore) persist(ctx context.Context) {
	if err := s.snaps.Save(ctx, s.scope, s.items); err != nil {
		s.log.Error("cart snapshot write failed", "scope", s.scope, "err", err)
	}
}
