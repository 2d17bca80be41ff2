package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// withURLParam attaches a chi route parameter to the request context
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleListBoxes(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			target: "/boxes?category=tech",
			setupMock: func(svc *MockCatalogService) {
				svc.On("ListBoxes", mock.Anything, mock.MatchedBy(func(f domain.BoxFilter) bool {
					return f.Category == "tech" && f.PublishedOnly
				})).Return([]domain.Box{{Name: "Apple Hype Box"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":1`,
		},
		{
			name:           "Bad price filter",
			target:         "/boxes?min_price=cheap",
			setupMock:      func(svc *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPrice,
		},
		{
			name:   "Invalid sort",
			target: "/boxes?sort=chaos",
			setupMock: func(svc *MockCatalogService) {
				svc.On("ListBoxes", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
		{
			name:   "Service error",
			target: "/boxes",
			setupMock: func(svc *MockCatalogService) {
				svc.On("ListBoxes", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			HandleListBoxes(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleSearchBoxes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("SearchBoxes", mock.Anything, "iphone", mock.Anything).
			Return([]domain.Box{{Name: "iPhone Case"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/boxes/search?q=iphone", nil)
		rec := httptest.NewRecorder()
		HandleSearchBoxes(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "iPhone Case")
	})

	t.Run("Missing query", func(t *testing.T) {
		svc := new(MockCatalogService)

		req := httptest.NewRequest(http.MethodGet, "/boxes/search", nil)
		rec := httptest.NewRecorder()
		HandleSearchBoxes(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SearchBoxes")
	})
}

func TestHandleGetBoxBySlug(t *testing.T) {
	t.Run("Exact match", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("GetBoxBySlug", mock.Anything, "apple-hype").Return(&catalog.Resolution{
			Box:          &domain.Box{Name: "Apple Hype Box", Slug: "apple-hype"},
			ResolvedSlug: "apple-hype",
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/boxes/apple-hype", nil), "slug", "apple-hype")
		rec := httptest.NewRecorder()
		HandleGetBoxBySlug(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"resolved_slug":"apple-hype"`)
	})

	t.Run("Fuzzy match flagged", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("GetBoxBySlug", mock.Anything, "aple-hype").Return(&catalog.Resolution{
			Box:          &domain.Box{Name: "Apple Hype Box", Slug: "apple-hype"},
			ResolvedSlug: "apple-hype",
			Fuzzy:        true,
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/boxes/aple-hype", nil), "slug", "aple-hype")
		rec := httptest.NewRecorder()
		HandleGetBoxBySlug(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fuzzy":true`)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("GetBoxBySlug", mock.Anything, "ghost").Return(nil, domain.ErrBoxNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/boxes/ghost", nil), "slug", "ghost")
		rec := httptest.NewRecorder()
		HandleGetBoxBySlug(svc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgBoxNotFoundError)
	})
}

func TestHandleCreateBox(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: CreateBoxRequest{
				Name:     "Apple Hype Box",
				Price:    49.99,
				Category: "tech",
				Provider: domain.ProviderManual,
				Items: []BoxItemRequest{
					{Name: "AirPods Pro", Value: 249, DropChance: 5},
				},
			},
			setupMock: func(svc *MockCatalogService) {
				svc.On("CreateBox", mock.Anything, mock.MatchedBy(func(b *domain.Box) bool {
					return b.Name == "Apple Hype Box" && len(b.Items) == 1
				})).Return(7, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"box_id":7`,
		},
		{
			name: "Validation failure",
			requestBody: CreateBoxRequest{
				Name:     "",
				Category: "tech",
				Provider: domain.ProviderManual,
			},
			setupMock:      func(svc *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Unknown provider",
			requestBody: CreateBoxRequest{
				Name:     "X",
				Category: "tech",
				Provider: "shadyco",
			},
			setupMock:      func(svc *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid provider",
		},
		{
			name: "Slug conflict",
			requestBody: CreateBoxRequest{
				Name:     "Apple Hype Box",
				Category: "tech",
				Provider: domain.ProviderManual,
			},
			setupMock: func(svc *MockCatalogService) {
				svc.On("CreateBox", mock.Anything, mock.Anything).Return(0, domain.ErrSlugTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSlugTakenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			tt.setupMock(svc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/admin/boxes", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			HandleCreateBox(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleDeleteBox(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("DeleteBox", mock.Anything, 7).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/admin/boxes/7", nil), "boxID", "7")
		rec := httptest.NewRecorder()
		HandleDeleteBox(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgBoxDeletedSuccess)
	})

	t.Run("Bad ID", func(t *testing.T) {
		svc := new(MockCatalogService)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/admin/boxes/abc", nil), "boxID", "abc")
		rec := httptest.NewRecorder()
		HandleDeleteBox(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "DeleteBox")
	})
}
