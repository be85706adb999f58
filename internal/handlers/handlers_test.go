package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhaus_back_end/internal/models"
	"brewhaus_back_end/internal/store"
	"brewhaus_back_end/internal/stripehook"
)

type stubTiers struct {
	list    []models.SubscriptionTier
	listErr error

	tier   *models.SubscriptionTier
	getErr error
}

func (s *stubTiers) List(context.Context) ([]models.SubscriptionTier, error) {
	return s.list, s.listErr
}

func (s *stubTiers) GetByID(context.Context, int64) (*models.SubscriptionTier, error) {
	return s.tier, s.getErr
}

type stubOrders struct {
	order  *models.Order
	getErr error

	orders  []models.Order
	listErr error
}

func (s *stubOrders) GetByID(context.Context, int64) (*models.Order, error) {
	return s.order, s.getErr
}

func (s *stubOrders) ListByUser(context.Context, int64) ([]models.Order, error) {
	return s.orders, s.listErr
}

type stubUsers struct{}

func (stubUsers) Create(context.Context, string, string, string) (int64, error) { return 1, nil }
func (stubUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, store.ErrNotFound
}

type stubPayments struct {
	url string
	err error
}

func (s *stubPayments) CreateSubscriptionCheckout(context.Context, models.AuthUser, models.SubscriptionTier) (string, error) {
	return s.url, s.err
}

type stubReconciler struct {
	err     error
	payload []byte
	sig     string
}

func (s *stubReconciler) Process(_ context.Context, payload []byte, sig string) error {
	s.payload = payload
	s.sig = sig
	return s.err
}

func newTestRouter(h *Handler, withUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if withUser {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", int64(7))
			c.Set("email", "jo@brewhaus.coffee")
		})
	}
	r.GET("/api/subscription", h.GetSubscriptionTiers)
	r.POST("/api/subscription", h.CreateSubscription)
	r.POST("/api/webhooks/stripe", h.StripeWebhook)
	r.GET("/api/orders", h.ListOrders)
	return r
}

func TestGetSubscriptionTiers(t *testing.T) {
	tiers := &stubTiers{list: []models.SubscriptionTier{
		{ID: 1, Name: "Casual Cupper", MonthlyAmount: "19.99", CoffeeAmount: 250},
		{ID: 2, Name: "Daily Drinker", MonthlyAmount: "34.99", CoffeeAmount: 500},
	}}
	h := New(tiers, &stubOrders{}, stubUsers{}, &stubPayments{}, &stubReconciler{}, "secret")
	r := newTestRouter(h, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/subscription", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.SubscriptionTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Daily Drinker", got[1].Name)
}

func TestCreateSubscriptionUnauthenticated(t *testing.T) {
	h := New(&stubTiers{}, &stubOrders{}, stubUsers{}, &stubPayments{}, &stubReconciler{}, "secret")
	r := newTestRouter(h, false)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"tierId": 2}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/subscription", body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSubscriptionUnknownTier(t *testing.T) {
	h := New(&stubTiers{getErr: store.ErrNotFound}, &stubOrders{}, stubUsers{}, &stubPayments{}, &stubReconciler{}, "secret")
	r := newTestRouter(h, true)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"tierId": 42}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/subscription", body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSubscriptionProviderFailure(t *testing.T) {
	tiers := &stubTiers{tier: &models.SubscriptionTier{ID: 2, Name: "Daily Drinker", MonthlyAmount: "34.99"}}
	h := New(tiers, &stubOrders{}, stubUsers{}, &stubPayments{err: errors.New("stripe down")}, &stubReconciler{}, "secret")
	r := newTestRouter(h, true)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"tierId": 2}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/subscription", body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateSubscriptionReturnsCheckoutURL(t *testing.T) {
	tiers := &stubTiers{tier: &models.SubscriptionTier{ID: 2, Name: "Daily Drinker", MonthlyAmount: "34.99"}}
	h := New(tiers, &stubOrders{}, stubUsers{}, &stubPayments{url: "https://checkout.stripe.com/c/pay/cs_test"}, &stubReconciler{}, "secret")
	r := newTestRouter(h, true)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"tierId": 2}`)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/subscription", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", resp["checkoutUrl"])
}

func TestStripeWebhookStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"succès", nil, http.StatusOK},
		{"signature invalide", stripehook.ErrSignature, http.StatusBadRequest},
		{"payload illisible", stripehook.ErrBadPayload, http.StatusBadRequest},
		{"stockage en panne", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &stubReconciler{err: tt.err}
			h := New(&stubTiers{}, &stubOrders{}, stubUsers{}, &stubPayments{}, rec, "secret")
			r := newTestRouter(h, false)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe",
				bytes.NewBufferString(`{"type":"checkout.session.completed"}`))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "t=1,v1=abc", rec.sig)
			assert.NotEmpty(t, rec.payload)
		})
	}
}

func TestListOrders(t *testing.T) {
	orders := &stubOrders{orders: []models.Order{
		{ID: 1, UserID: 7, SubscriptionTierID: 2, Status: models.OrderStatusActive},
	}}
	h := New(&stubTiers{}, orders, stubUsers{}, &stubPayments{}, &stubReconciler{}, "secret")
	r := newTestRouter(h, true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.OrderStatusActive, got[0].Status)
}
