package service

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/products"
)

// checkCode fails with a DUPLICATE_CODE error when a product other than self
// already uses code. Pass self = 0 on create.
//
// The lookup and the later insert are not atomic; the unique index on
// products.code catches the race and the repository reports it as
// products.ErrDuplicateCode.
func (s *Service) checkCode(ctx context.Context, code string, self int64) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, products.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("repo find by code: %w", err)
	}
	if existing.ID != self {
		return s.reject(products.NewDuplicateCode(code))
	}
	return nil
}
