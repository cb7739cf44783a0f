package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-catalog/internal/products"
	"product-catalog/internal/products/validation"

	"github.com/gin-gonic/gin"
)

type stubService struct {
	listFn   func(ctx context.Context, filter products.Filter, page, limit int) (products.Page, error)
	getFn    func(ctx context.Context, id int64) (products.Product, error)
	createFn func(ctx context.Context, in validation.Input) (products.Product, error)
	updateFn func(ctx context.Context, id int64, in validation.Input) (products.Product, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubService) ListProducts(ctx context.Context, filter products.Filter, page, limit int) (products.Page, error) {
	return s.listFn(ctx, filter, page, limit)
}
func (s *stubService) GetProduct(ctx context.Context, id int64) (products.Product, error) {
	return s.getFn(ctx, id)
}
func (s *stubService) CreateProduct(ctx context.Context, in validation.Input) (products.Product, error) {
	return s.createFn(ctx, in)
}
func (s *stubService) UpdateProduct(ctx context.Context, id int64, in validation.Input) (products.Product, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubService) DeleteProduct(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubHealth struct{ err error }

func (s stubHealth) Health() error { return s.err }

func setupRouter(svc ProductService, guard ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(ErrorHandler(logger))
	RegisterRoutes(r, NewHandler(svc), stubHealth{}, guard...)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

var mouse = products.Product{ID: 7, Title: "Mouse", Code: "MOUSE01", Price: 25, Stock: 10, Thumbnails: []string{"img.png"}, Status: true}

func TestHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"title":"Mouse","price":"25"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid product data",
		},
		{
			name:       "validation error",
			body:       `{"title":"Mouse"}`,
			svcErr:     products.NewInvalidTypes(products.FieldErrors{"price": "price is required"}),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid product data",
		},
		{
			name:       "duplicate code",
			body:       `{"code":"MOUSE01"}`,
			svcErr:     products.NewDuplicateCode("MOUSE01"),
			wantStatus: http.StatusBadRequest,
			wantError:  "Duplicate product code",
		},
		{
			name:       "unexpected error",
			body:       `{}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Unhandled error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				createFn: func(_ context.Context, in validation.Input) (products.Product, error) {
					if tt.svcErr != nil {
						return products.Product{}, tt.svcErr
					}
					if !in.Title.Present() || !in.Price.Present() || in.Code.Present() {
						t.Fatalf("unexpected input presence: %+v", in)
					}
					return mouse, nil
				},
			}

			w := do(setupRouter(svc), http.MethodPost, "/products", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if tt.wantError != "" {
				if body["status"] != "error" || body["error"] != tt.wantError {
					t.Fatalf("want error %q, got %v", tt.wantError, body)
				}
				return
			}
			payload, _ := body["payload"].(map[string]any)
			if body["status"] != "success" || payload["code"] != "MOUSE01" {
				t.Fatalf("unexpected body %v", body)
			}
		})
	}
}

func TestHandler_CreateProduct_CauseListsFields(t *testing.T) {
	svc := &stubService{
		createFn: func(_ context.Context, _ validation.Input) (products.Product, error) {
			return products.Product{}, products.NewInvalidTypes(products.FieldErrors{
				"price": "price must be a positive integer",
				"code":  "code is required and must be non-empty text",
			})
		},
	}

	w := do(setupRouter(svc), http.MethodPost, "/products", `{}`)

	cause, ok := decodeBody(t, w)["cause"].(map[string]any)
	if !ok {
		t.Fatalf("want cause object, got %s", w.Body.String())
	}
	if cause["price"] != "price must be a positive integer" || len(cause) != 2 {
		t.Fatalf("unexpected cause %v", cause)
	}
}

func TestHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantID     int64
	}{
		{name: "found", path: "/products/7", wantStatus: http.StatusOK, wantID: 7},
		{name: "not found", path: "/products/99", wantStatus: http.StatusNotFound, wantID: 99},
		{name: "non-numeric id", path: "/products/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/products/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				getFn: func(_ context.Context, id int64) (products.Product, error) {
					if id != tt.wantID {
						t.Fatalf("want id %d, got %d", tt.wantID, id)
					}
					if id == mouse.ID {
						return mouse, nil
					}
					return products.Product{}, products.NewNotFound(id)
				},
			}

			w := do(setupRouter(svc), http.MethodGet, tt.path, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandler_UpdateProduct(t *testing.T) {
	var gotID int64
	svc := &stubService{
		updateFn: func(_ context.Context, id int64, in validation.Input) (products.Product, error) {
			gotID = id
			if !in.Stock.Present() || in.Title.Present() {
				t.Fatalf("unexpected input presence: %+v", in)
			}
			p := mouse
			p.Stock = 0
			return p, nil
		},
	}

	w := do(setupRouter(svc), http.MethodPut, "/products/7", `{"stock":0}`)

	if w.Code != http.StatusOK {
		t.Fatalf("want status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotID != 7 {
		t.Fatalf("want id 7, got %d", gotID)
	}
}

func TestHandler_UpdateProduct_MalformedBody(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "unknown product, empty body", path: "/products/99", body: "", wantStatus: http.StatusNotFound, wantError: "Product not found"},
		{name: "unknown product, array body", path: "/products/99", body: `[1]`, wantStatus: http.StatusNotFound, wantError: "Product not found"},
		{name: "known product, array body", path: "/products/7", body: `[1]`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				getFn: func(_ context.Context, id int64) (products.Product, error) {
					if id == mouse.ID {
						return mouse, nil
					}
					return products.Product{}, products.NewNotFound(id)
				},
				updateFn: func(context.Context, int64, validation.Input) (products.Product, error) {
					t.Fatalf("update must not run for a malformed body")
					return products.Product{}, nil
				},
			}

			w := do(setupRouter(svc), http.MethodPut, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if tt.wantError != "" && body["error"] != tt.wantError {
				t.Fatalf("want error %q, got %v", tt.wantError, body["error"])
			}
		})
	}
}

func TestHandler_DeleteProduct(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svcErr     error
		wantStatus int
	}{
		{name: "success", path: "/products/42", wantStatus: http.StatusOK},
		{name: "not found", path: "/products/999", svcErr: products.NewNotFound(999), wantStatus: http.StatusNotFound},
		{name: "invalid id", path: "/products/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				deleteFn: func(_ context.Context, _ int64) error { return tt.svcErr },
			}

			w := do(setupRouter(svc), http.MethodDelete, tt.path, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d", tt.wantStatus, w.Code)
			}
			if w.Code == http.StatusOK {
				body := decodeBody(t, w)
				if body["status"] != "success" || body["payload"] != "product deleted" {
					t.Fatalf("unexpected body %v", body)
				}
			}
		})
	}
}

func TestHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		page       products.Page
		wantStatus int
		wantFilter func(t *testing.T, f products.Filter)
		wantBody   func(t *testing.T, body map[string]any)
	}{
		{
			name:       "middle page has both links",
			query:      "?page=2&limit=2&category=audio",
			page:       products.Page{Items: []products.Product{mouse, mouse}, Total: 5, Page: 2, Limit: 2},
			wantStatus: http.StatusOK,
			wantFilter: func(t *testing.T, f products.Filter) {
				if f.Category != "audio" || f.Status != nil || f.Sort != products.SortNone {
					t.Fatalf("unexpected filter %+v", f)
				}
			},
			wantBody: func(t *testing.T, body map[string]any) {
				if body["status"] != "success" || body["totalPages"] != float64(3) || body["totalDocs"] != float64(5) {
					t.Fatalf("unexpected body %v", body)
				}
				if body["prevPage"] != float64(1) || body["nextPage"] != float64(3) {
					t.Fatalf("unexpected pages %v %v", body["prevPage"], body["nextPage"])
				}
				if body["nextLink"] != "/products?category=audio&limit=2&page=3" {
					t.Fatalf("unexpected nextLink %v", body["nextLink"])
				}
			},
		},
		{
			name:       "status and sort",
			query:      "?status=false&sort=desc",
			page:       products.Page{Items: []products.Product{mouse}, Total: 1, Page: 1, Limit: 10},
			wantStatus: http.StatusOK,
			wantFilter: func(t *testing.T, f products.Filter) {
				if f.Status == nil || *f.Status || f.Sort != products.SortPriceDesc {
					t.Fatalf("unexpected filter %+v", f)
				}
			},
			wantBody: func(t *testing.T, body map[string]any) {
				if body["hasPrevPage"] != false || body["hasNextPage"] != false || body["prevLink"] != nil || body["nextLink"] != nil {
					t.Fatalf("unexpected body %v", body)
				}
			},
		},
		{
			name:       "empty page reports error status",
			page:       products.Page{Page: 1, Limit: 10},
			wantStatus: http.StatusOK,
			wantBody: func(t *testing.T, body map[string]any) {
				payload, ok := body["payload"].([]any)
				if body["status"] != "error" || !ok || len(payload) != 0 || body["totalPages"] != float64(1) {
					t.Fatalf("unexpected body %v", body)
				}
			},
		},
		{
			name:       "unknown sort is ignored",
			query:      "?sort=sideways",
			page:       products.Page{Items: []products.Product{mouse}, Total: 1, Page: 1, Limit: 10},
			wantStatus: http.StatusOK,
			wantFilter: func(t *testing.T, f products.Filter) {
				if f.Sort != products.SortNone {
					t.Fatalf("want no sort, got %q", f.Sort)
				}
			},
		},
		{
			name:       "invalid status",
			query:      "?status=maybe",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				listFn: func(_ context.Context, f products.Filter, _, _ int) (products.Page, error) {
					if tt.wantFilter != nil {
						tt.wantFilter(t, f)
					}
					return tt.page, nil
				},
			}

			w := do(setupRouter(svc), http.MethodGet, "/products"+tt.query, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != nil {
				tt.wantBody(t, decodeBody(t, w))
			}
		})
	}
}

func TestHandler_ListProducts_DefaultPagination(t *testing.T) {
	svc := &stubService{
		listFn: func(_ context.Context, _ products.Filter, page, limit int) (products.Page, error) {
			if page != defaultPage || limit != defaultLimit {
				t.Fatalf("want page %d limit %d, got %d %d", defaultPage, defaultLimit, page, limit)
			}
			return products.Page{Page: page, Limit: limit}, nil
		},
	}

	w := do(setupRouter(svc), http.MethodGet, "/products?page=-3&limit=abc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want status 200, got %d", w.Code)
	}
}

func TestRoutes_GuardProtectsMutations(t *testing.T) {
	deny := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Status: statusError, Error: "Unauthorized"})
	}
	svc := &stubService{
		getFn: func(_ context.Context, _ int64) (products.Product, error) { return mouse, nil },
		createFn: func(_ context.Context, _ validation.Input) (products.Product, error) {
			t.Fatal("create must not run behind a denying guard")
			return products.Product{}, nil
		},
		deleteFn: func(_ context.Context, _ int64) error {
			t.Fatal("delete must not run behind a denying guard")
			return nil
		},
	}
	r := setupRouter(svc, deny)

	if w := do(r, http.MethodGet, "/products/7", ""); w.Code != http.StatusOK {
		t.Fatalf("reads must stay public, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/products", `{}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 on create, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/products/7", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 on delete, got %d", w.Code)
	}
}

func TestRoutes_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(&stubService{}), stubHealth{err: errors.New("down")})

	w := do(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
}
