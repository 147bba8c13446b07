package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoshanShah43/rs-bazar/configs"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/catalog"
	"github.com/RoshanShah43/rs-bazar/internal/adapter/http/middleware"
	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
)

const testSecret = "test-secret"

type memSnapshots struct {
	saved map[string][]domain.LineItem
}

func (m *memSnapshots) Load(_ context.Context, scope string) ([]domain.LineItem, error) {
	return m.saved[scope], nil
}

func (m *memSnapshots) Save(_ context.Context, scope string, items []domain.LineItem) error {
	cp := make([]domain.LineItem, len(items))
	copy(cp, items)
	m.saved[scope] = cp
	return nil
}

func (m *memSnapshots) Delete(_ context.Context, scope string) error {
	delete(m.saved, scope)
	return nil
}

type stubSubmitter struct {
	err      error
	payloads []domain.OrderPayload
}

func (s *stubSubmitter) SubmitOrder(_ context.Context, p domain.OrderPayload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

func newTestRouter(sub *stubSubmitter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var cfg configs.Config
	cfg.Security.JWTSecret = testSecret
	cfg.Security.Issuer = "rs-bazar-sessions"
	cfg.Security.Audience = "rs-bazar"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	// default catalog only; no upstream in tests
	cat := catalog.NewClient("", 0, 0, log)
	sessions := usecase.NewSessions(cat, &memSnapshots{saved: map[string][]domain.LineItem{}}, sub, 0, log)

	return NewRouter(NewCartHandler(sessions), NewCheckoutHandler(sessions), middleware.NewSession(cfg))
}

func buyerToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"iss":      "rs-bazar-sessions",
		"aud":      "rs-bazar",
		"sub":      "u1",
		"username": "roshan",
		"email":    "roshan@example.com",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(r *gin.Engine, method, path, token string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addItemBody() map[string]any {
	return map[string]any{
		"productId":    "freefire",
		"packageId":    "ff1",
		"packageLabel": "Free Fire 25 Diamonds",
		"unitPrice":    35,
		"quantity":     2,
		"accountId":    "12345",
	}
}

func TestGuestGetsMintedCartID(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})

	w := doJSON(r, http.MethodGet, "/v1/cart", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.GuestHeader))
}

func TestGuestCartRoundTrip(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})
	hdr := map[string]string{middleware.GuestHeader: "g-123"}

	w := doJSON(r, http.MethodPost, "/v1/cart/items", "", addItemBody(), hdr)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/cart", "", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items []domain.LineItem `json:"items"`
		Total int64             `json:"total"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(70), resp.Total)
	assert.Equal(t, 1, resp.Count)

	// another guest sees an empty cart
	w = doJSON(r, http.MethodGet, "/v1/cart/count", "", nil, map[string]string{middleware.GuestHeader: "g-456"})
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestAddUnknownProduct(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})
	body := addItemBody()
	body["productId"] = "nosuchgame"

	w := doJSON(r, http.MethodPost, "/v1/cart/items", buyerToken(t), body, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"unknown_product"}`, w.Body.String())
}

func TestRemoveItem(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})
	token := buyerToken(t)

	w := doJSON(r, http.MethodPost, "/v1/cart/items", token, addItemBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var item domain.LineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	w = doJSON(r, http.MethodDelete, "/v1/cart/items/"+strconv.FormatInt(item.ID, 10), token, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/cart/count", token, nil, nil)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestBeginOnEmptyCart(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})

	w := doJSON(r, http.MethodPost, "/v1/checkout", buyerToken(t), nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"empty cart"}`, w.Body.String())
}

func TestSubmitRequiresLogin(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})
	hdr := map[string]string{middleware.GuestHeader: "g-123"}

	w := doJSON(r, http.MethodPost, "/v1/cart/items", "", addItemBody(), hdr)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/checkout/submit", "", map[string]any{"paymentMethod": "esewa"}, hdr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"login required"}`, w.Body.String())
}

func TestCheckoutFlow(t *testing.T) {
	sub := &stubSubmitter{}
	r := newTestRouter(sub)
	token := buyerToken(t)

	w := doJSON(r, http.MethodPost, "/v1/cart/items", token, addItemBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/checkout", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var begin struct {
		Code   string `json:"code"`
		Review struct {
			Total int64 `json:"total"`
		} `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &begin))
	assert.Len(t, begin.Code, 5)
	assert.Equal(t, int64(70), begin.Review.Total)

	// the code stays redisplayable until submission
	w = doJSON(r, http.MethodGet, "/v1/checkout", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var review struct {
		State string `json:"state"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, "Confirming", review.State)
	assert.Equal(t, begin.Code, review.Code)

	w = doJSON(r, http.MethodPost, "/v1/checkout/submit", token, map[string]any{"paymentMethod": "esewa"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var submit struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submit))
	assert.Equal(t, begin.Code, submit.Code)

	require.Len(t, sub.payloads, 1)
	assert.Equal(t, "u1", sub.payloads[0].BuyerID)

	w = doJSON(r, http.MethodGet, "/v1/cart/count", token, nil, nil)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestSubmitServiceFailure(t *testing.T) {
	sub := &stubSubmitter{err: &domain.ServiceError{Message: "orders table unavailable"}}
	r := newTestRouter(sub)
	token := buyerToken(t)

	w := doJSON(r, http.MethodPost, "/v1/cart/items", token, addItemBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/v1/checkout/submit", token, map[string]any{"paymentMethod": "esewa"}, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"orders table unavailable"}`, w.Body.String())

	// cart survives the failure
	w = doJSON(r, http.MethodGet, "/v1/cart/count", token, nil, nil)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())
}

func TestInvalidTokenRejected(t *testing.T) {
	r := newTestRouter(&stubSubmitter{})

	w := doJSON(r, http.MethodGet, "/v1/cart", "not-a-jwt", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
