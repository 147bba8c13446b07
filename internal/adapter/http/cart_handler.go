package http

import (
	"net/http"
	"strconv"

	"github.com/RoshanShah43/rs-bazar/internal/adapter/http/middleware"
	"github.com/RoshanShah43/rs-bazar/internal/logging"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	sessions *usecase.Sessions
}

func NewCartHandler(sessions *usecase.Sessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

type addItemReq struct {
	ProductID    string `json:"productId" binding:"required"`
	PackageID    string `json:"packageId" binding:"required"`
	PackageLabel string `json:"packageLabel" binding:"required"`
	UnitPrice    int64  `json:"unitPrice" binding:"min=0"`
	Quantity     int    `json:"quantity" binding:"omitempty,min=1"`
	AccountID    string `json:"accountId" binding:"required"`
	ServerID     string `json:"serverId"`
}

// AddItem handler: POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	item, ok := sess.Cart.Add(c.Request.Context(), usecase.AddItemInput{
		ProductID:    req.ProductID,
		PackageID:    req.PackageID,
		PackageLabel: req.PackageLabel,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		AccountID:    req.AccountID,
		ServerID:     req.ServerID,
	})
	if !ok {
		logging.From(c).Warn("add to cart rejected, unknown product", "product", req.ProductID)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown_product"})
		return
	}

	itemsAdded.Inc()
	c.JSON(http.StatusCreated, item)
}

// GetCart handler: GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	c.JSON(http.StatusOK, gin.H{
		"items": sess.Cart.List(),
		"total": sess.Cart.Total(),
		"count": sess.Cart.Count(),
	})
}

// Count handler: GET /v1/cart/count — feeds the cart badge.
func (h *CartHandler) Count(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	c.JSON(http.StatusOK, gin.H{"count": sess.Cart.Count()})
}

// RemoveItem handler: DELETE /v1/cart/items/:id. Removing an id that is
// not in the cart is still a 204; the end state is the same.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_item_id"})
		return
	}

	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	sess.Cart.Remove(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// Clear handler: DELETE /v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	sess := h.sessions.Get(c.Request.Context(), middleware.Scope(c))
	sess.Cart.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
