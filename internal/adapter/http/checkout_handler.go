package http

import (
	"errors"
	"net/http"

	"github.com/RoshanShah43/rs-bazar/internal/adapter/http/middleware"
	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/logging"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	sessions *usecase.Sessions
}

func NewCheckoutHandler(sessions *usecase.Sessions) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

// Review handler: GET /v1/checkout — session state, summary and the
// remarks code so the client can redisplay it until submission.
func (h *CheckoutHandler) Review(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	review := sess.Checkout.Review()
	c.JSON(http.StatusOK, gin.H{
		"state":  sess.Checkout.State(),
		"code":   sess.Checkout.Code(),
		"review": review,
	})
}

// Begin handler: POST /v1/checkout — opens the checkout form and mints the
// session's remarks code.
func (h *CheckoutHandler) Begin(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	review, code, err := sess.Checkout.Begin()
	if err != nil {
		respondCheckoutErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":   code,
		"review": review,
	})
}

// Dismiss handler: DELETE /v1/checkout — closes the form and discards the
// code; the next checkout gets a fresh one.
func (h *CheckoutHandler) Dismiss(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	sess.Checkout.Dismiss()
	c.Status(http.StatusNoContent)
}

type submitReq struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Submit handler: POST /v1/checkout/submit
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	code, err := sess.Checkout.Submit(c.Request.Context(), middleware.Identity(c), req.PaymentMethod)
	if err != nil {
		respondCheckoutErr(c, err)
		return
	}

	ordersSubmitted.Inc()
	c.JSON(http.StatusOK, gin.H{
		"code":    code,
		"message": "Order placed. Enter code " + code + " in the payment remarks field.",
	})
}

func respondCheckoutErr(c *gin.Context, err error) {
	var se *domain.ServiceError
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		// the client redirects to the external login flow
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &se):
		submitFailures.Inc()
		logging.From(c).Error("order service rejected submission", "err", se.Message)
		c.JSON(http.StatusBadGateway, gin.H{"error": se.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
