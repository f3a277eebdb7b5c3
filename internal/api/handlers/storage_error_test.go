package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aiguilog/aiguilog/internal/api/handlers"
	"github.com/aiguilog/aiguilog/internal/api/middleware"
	"github.com/aiguilog/aiguilog/internal/domain"
	"github.com/aiguilog/aiguilog/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// downOutingRepo simulates an unreachable database: every call reports
// the storage-unavailable condition the repository layer raises when
// Postgres cannot be dialed.
type downOutingRepo struct{}

func (downOutingRepo) storageDown() error {
	return fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connect: connection refused", domain.ErrStorageUnavailable)
}

func (r downOutingRepo) Create(ctx context.Context, outing *domain.Outing) error {
	return r.storageDown()
}

func (r downOutingRepo) GetOwned(ctx context.Context, userID, id uuid.UUID) (*domain.Outing, error) {
	return nil, r.storageDown()
}

func (r downOutingRepo) ListByUser(ctx context.Context, userID uuid.UUID, done *bool) ([]*domain.Outing, error) {
	return nil, r.storageDown()
}

func (r downOutingRepo) Update(ctx context.Context, outing *domain.Outing) error {
	return r.storageDown()
}

func (r downOutingRepo) DeleteOwned(ctx context.Context, userID, id uuid.UUID) error {
	return r.storageDown()
}

func TestOutingHandler_StorageUnavailable(t *testing.T) {
	handler := handlers.NewOutingHandler(service.NewOutingService(downOutingRepo{}))
	userID := uuid.New()

	authed := func(req *http.Request) *http.Request {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		return req.WithContext(ctx)
	}

	t.Run("list answers 503", func(t *testing.T) {
		req := authed(httptest.NewRequest(http.MethodGet, "/api/sorties", nil))
		rec := httptest.NewRecorder()

		handler.List(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Service momentanément indisponible")
	})

	t.Run("create answers 503", func(t *testing.T) {
		body := strings.NewReader(`{
			"type": "a-faire",
			"sommet": "Mont Blanc",
			"altitude": 4808,
			"denivele": 1500,
			"methode": "Alpinisme",
			"annee": 2026
		}`)
		req := authed(httptest.NewRequest(http.MethodPost, "/api/sorties", body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Service momentanément indisponible")
	})
}
