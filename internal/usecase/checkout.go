package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/reconcode"
)

// CheckoutState tracks one buyer's path from cart drawer to placed order.
type CheckoutState string

const (
	StateIdle       CheckoutState = "Idle"
	StateReviewing  CheckoutState = "Reviewing"
	StateConfirming CheckoutState = "Confirming"
	StateSubmitting CheckoutState = "Submitting"
	StateCompleted  CheckoutState = "Completed"
	StateFailed     CheckoutState = "Failed"
)

// local@domain, no whitespace, dotted domain. Matches what the profile
// form accepts.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ReviewLine is one cart line as shown in the checkout summary.
type ReviewLine struct {
	ProductTitle string `json:"productTitle"`
	PackageLabel string `json:"packageLabel"`
	Quantity     int    `json:"quantity"`
	Total        int64  `json:"total"`
}

// CartReview is the checkout summary: numbered lines plus grand total.
type CartReview struct {
	Lines []ReviewLine `json:"lines"`
	Total int64        `json:"total"`
}

// Checkout walks one scope's session through
// Idle -> Reviewing -> Confirming -> Submitting -> Completed/Failed.
// Exactly one remarks code exists per Confirming session: Begin mints it,
// Dismiss discards it, and a retry after a failed submit reuses it.
type Checkout struct {
	mu      sync.Mutex
	cart    *CartStore
	orders  OrderSubmitter
	log     *slog.Logger
	genCode func() string

	state CheckoutState
	code  string
}

// NewCheckout wires a checkout session over the scope's cart.
func NewCheckout(cart *CartStore, orders OrderSubmitter, log *slog.Logger) *Checkout {
	return &Checkout{
		cart:    cart,
		orders:  orders,
		log:     log,
		genCode: reconcode.New,
		state:   StateIdle,
	}
}

// Review opens the cart drawer: current lines and total.
func (c *Checkout) Review() CartReview {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		c.state = StateReviewing
	}
	return c.review()
}

func (c *Checkout) review() CartReview {
	items := c.cart.List()
	lines := make([]ReviewLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, ReviewLine{
			ProductTitle: it.ProductTitle,
			PackageLabel: it.PackageLabel,
			Quantity:     it.Quantity,
			Total:        domain.LineTotal(it),
		})
	}
	return CartReview{Lines: lines, Total: c.cart.Total()}
}

// Begin opens the checkout form. Requires a non-empty cart; mints the
// session's remarks code and holds it until submission or dismissal.
func (c *Checkout) Begin() (CartReview, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return CartReview{}, "", domain.ErrSubmitInFlight
	}
	if c.cart.Count() == 0 {
		return CartReview{}, "", domain.ErrEmptyCart
	}
	c.state = StateConfirming
	if c.code == "" {
		c.code = c.genCode()
	}
	return c.review(), c.code, nil
}

// Dismiss closes the checkout form and throws the code away; the next
// Begin generates a fresh one.
func (c *Checkout) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return
	}
	c.state = StateIdle
	c.code = ""
}

// State returns the session's current phase.
func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Code redisplays the session's remarks code, empty outside a session.
func (c *Checkout) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// Submit validates preconditions, builds the order payload and hands it to
// the order service. On success the cart is cleared and the remarks code
// returned for display; on service failure the cart is left intact and the
// upstream message surfaces verbatim.
func (c *Checkout) Submit(ctx context.Context, buyer domain.Identity, paymentMethod string) (string, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return "", domain.ErrSubmitInFlight
	}
	if buyer.IsZero() {
		c.mu.Unlock()
		return "", domain.ErrLoginRequired
	}
	if paymentMethod == "" {
		c.mu.Unlock()
		return "", domain.ErrNoPaymentMethod
	}
	if buyer.Email != "" && !emailRe.MatchString(buyer.Email) {
		c.mu.Unlock()
		return "", domain.ErrInvalidEmail
	}
	items := c.cart.List()
	if len(items) == 0 {
		// cart may have emptied since the form was opened
		c.mu.Unlock()
		return "", domain.ErrEmptyCart
	}
	if c.code == "" {
		// submit without an open checkout form still gets a code
		c.code = c.genCode()
	}
	code := c.code
	c.state = StateSubmitting
	c.mu.Unlock()

	payload := domain.BuildOrderPayload(buyer.ID, items, code)
	err := c.orders.SubmitOrder(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.log.Warn("order submission failed", "buyer", buyer.ID, "err", err)
		return "", err
	}

	c.cart.Clear(ctx)
	c.state = StateCompleted
	c.code = ""
	c.log.Info("order placed", "buyer", buyer.ID, "lines", len(payload.Lines), "code", code)
	return code, nil
}
