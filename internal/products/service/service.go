package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"product-catalog/internal/products"
	"product-catalog/internal/products/validation"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Querier is the read side of the product store.
type Querier interface {
	GetByID(ctx context.Context, id int64) (products.Product, error)
	FindByCode(ctx context.Context, code string) (products.Product, error)
	List(ctx context.Context, filter products.Filter, limit, offset int) ([]products.Product, error)
	Count(ctx context.Context, filter products.Filter) (int64, error)
}

// Mutator is the write side of the product store.
type Mutator interface {
	Create(ctx context.Context, p products.Product) (products.Product, error)
	Update(ctx context.Context, p products.Product) (products.Product, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Querier
	Mutator
}

type Publisher interface {
	Publish(ctx context.Context, event products.ProductEvent) error
}

type Metrics struct {
	Created  prometheus.Counter
	Updated  prometheus.Counter
	Deleted  prometheus.Counter
	// Rejected counts mutations refused with a catalog error code. Reads
	// are not counted.
	Rejected *prometheus.CounterVec
}

type Service struct {
	repo      Repository
	publisher Publisher
	logger    *slog.Logger
	metrics   Metrics
}

func New(repo Repository, publisher Publisher, logger *slog.Logger, metrics Metrics) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *Service) ListProducts(ctx context.Context, filter products.Filter, page, limit int) (products.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	// Pages whose offset does not fit in an int are past the last page.
	var items []products.Product
	if page-1 <= math.MaxInt/limit {
		var err error
		items, err = s.repo.List(ctx, filter, limit, (page-1)*limit)
		if err != nil {
			return products.Page{}, fmt.Errorf("repo list: %w", err)
		}
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return products.Page{}, fmt.Errorf("repo count: %w", err)
	}
	return products.Page{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (products.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, products.ErrNotFound) {
		return products.Product{}, products.NewNotFound(id)
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("repo get %d: %w", id, err)
	}
	return product, nil
}

// CreateProduct coerces and validates in, rejects a code that is already
// taken and stores the product.
func (s *Service) CreateProduct(ctx context.Context, in validation.Input) (products.Product, error) {
	candidate := validation.Coerce(in)
	if !validation.Validate(candidate) {
		return products.Product{}, s.reject(products.NewInvalidTypes(validation.Report(candidate)))
	}
	if err := s.checkCode(ctx, candidate.Code.V, 0); err != nil {
		return products.Product{}, err
	}
	product, err := validation.Product(candidate)
	if err != nil {
		return products.Product{}, err
	}

	created, err := s.repo.Create(ctx, product)
	if errors.Is(err, products.ErrDuplicateCode) {
		return products.Product{}, s.reject(products.NewDuplicateCode(product.Code))
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("repo create: %w", err)
	}

	s.publish(ctx, products.EventCreated, created)
	s.metrics.Created.Inc()
	return created, nil
}

// UpdateProduct applies in to the stored product id. Fields left out, and
// blank text fields, keep their stored values; the merged product must pass
// the same validation as a new one.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in validation.Input) (products.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, products.ErrNotFound) {
		return products.Product{}, s.reject(products.NewNotFound(id))
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("repo get %d: %w", id, err)
	}

	candidate := validation.Merge(validation.FromProduct(existing), validation.Coerce(in))
	if !validation.Validate(candidate) {
		return products.Product{}, s.reject(products.NewInvalidTypes(validation.Report(candidate)))
	}
	if err := s.checkCode(ctx, candidate.Code.V, id); err != nil {
		return products.Product{}, err
	}
	product, err := validation.Product(candidate)
	if err != nil {
		return products.Product{}, err
	}
	product.ID = id
	product.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, product)
	switch {
	case errors.Is(err, products.ErrDuplicateCode):
		return products.Product{}, s.reject(products.NewDuplicateCode(product.Code))
	case errors.Is(err, products.ErrNotFound):
		return products.Product{}, s.reject(products.NewNotFound(id))
	case err != nil:
		return products.Product{}, fmt.Errorf("repo update %d: %w", id, err)
	}

	s.publish(ctx, products.EventUpdated, updated)
	s.metrics.Updated.Inc()
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return s.reject(products.NewNotFound(id))
		}
		return fmt.Errorf("repo delete: %w", err)
	}

	s.publish(ctx, products.EventDeleted, products.Product{ID: id})
	s.metrics.Deleted.Inc()
	return nil
}

func (s *Service) reject(e *products.Error) *products.Error {
	s.metrics.Rejected.WithLabelValues(string(e.Code)).Inc()
	return e
}

func (s *Service) publish(ctx context.Context, eventType string, p products.Product) {
	if err := s.publisher.Publish(ctx, products.ProductEvent{
		EventType: eventType,
		ProductID: p.ID,
		Code:      p.Code,
		Title:     p.Title,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("publish "+eventType+" event failed",
			"product_id", p.ID,
			"error", err,
		)
	}
}
