package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goodshop/internal/domain"
	"github.com/gin-gonic/gin"
)

type stubProducts struct {
	products []domain.Product
	err      error
}

func (s *stubProducts) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

type stubCheckout struct {
	session     *domain.CheckoutSession
	err         error
	calls       int
	lastItems   []domain.CheckoutLineItem
	lastSuccess string
	lastCancel  string
}

func (s *stubCheckout) Create(_ context.Context, items []domain.CheckoutLineItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	s.calls++
	s.lastItems = items
	s.lastSuccess = successURL
	s.lastCancel = cancelURL
	if s.err != nil {
		return nil, s.err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoLineItems
	}
	return s.session, nil
}

func newTestRouter(t *testing.T, deps Deps, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	router, err := buildRouter(logger, nil, deps, opts)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func defaultDeps() Deps {
	return Deps{
		Products: &stubProducts{},
		Checkout: &stubCheckout{session: &domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}},
	}
}

func TestBuildRouter_NilDependency(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	if _, err := buildRouter(logger, nil, Deps{}, Options{}); err == nil {
		t.Fatalf("expected error for nil dependencies")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, defaultDeps(), Options{RequestTimeout: time.Second})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyz_NoDB(t *testing.T) {
	router := newTestRouter(t, defaultDeps(), Options{RequestTimeout: time.Second})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 without db, got %d", rec.Code)
	}
}
