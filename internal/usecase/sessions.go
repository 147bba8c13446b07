package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Session bundles one scope's cart and checkout. A scope is the buyer id
// for logged-in users or the guest id for anonymous carting.
type Session struct {
	Cart     *CartStore
	Checkout *Checkout
}

const (
	defaultSessionIdle = 30 * time.Minute
	sweepEvery         = time.Minute
)

type sessionEntry struct {
	sess     *Session
	lastUsed time.Time
}

// Sessions lazily opens and caches per-scope sessions. Carts are snapshot
// persisted, so entries idle past the idle window are evicted and restored
// from their snapshot on the next touch; without that, every scanner hit
// minting a guest id would grow the map forever.
type Sessions struct {
	mu        sync.Mutex
	active    map[string]*sessionEntry
	lastSweep time.Time
	idle      time.Duration

	catalog CatalogProvider
	snaps   CartSnapshots
	orders  OrderSubmitter
	log     *slog.Logger
}

// NewSessions builds the registry over the service's ports. idle <= 0
// falls back to the default idle window.
func NewSessions(catalog CatalogProvider, snaps CartSnapshots, orders OrderSubmitter, idle time.Duration, log *slog.Logger) *Sessions {
	if idle <= 0 {
		idle = defaultSessionIdle
	}
	return &Sessions{
		active:  make(map[string]*sessionEntry),
		idle:    idle,
		catalog: catalog,
		snaps:   snaps,
		orders:  orders,
		log:     log,
	}
}

// Get returns the scope's session, restoring its cart from the last
// persisted snapshot on first touch.
func (s *Sessions) Get(ctx context.Context, scope string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweep(now)

	if e, ok := s.active[scope]; ok {
		e.lastUsed = now
		return e.sess
	}

	cart := OpenCartStore(ctx, scope, s.catalog, s.snaps, s.log)
	sess := &Session{
		Cart:     cart,
		Checkout: NewCheckout(cart, s.orders, s.log),
	}
	s.active[scope] = &sessionEntry{sess: sess, lastUsed: now}
	return sess
}

// sweep drops sessions idle past the window, at most once per sweepEvery.
// A session mid-submission is skipped. An evicted session still held by an
// in-flight request keeps working; its cart reconciles through the
// snapshot on the next restore. Caller holds mu.
func (s *Sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < sweepEvery {
		return
	}
	s.lastSweep = now
	for scope, e := range s.active {
		if now.Sub(e.lastUsed) < s.idle {
			continue
		}
		if e.sess.Checkout.State() == StateSubmitting {
			continue
		}
		delete(s.active, scope)
	}
}
