package service

import (
	"context"

	"xfood/internal/model"
	"xfood/internal/repository"
)

// TypeUserService reads user profile tiers.
type TypeUserService interface {
	List(ctx context.Context) ([]model.TypeUser, error)
}

type typeUserService struct {
	repo repository.TypeUserRepository
}

// NewTypeUserService builds a TypeUserService.
func NewTypeUserService(repo repository.TypeUserRepository) TypeUserService {
	return &typeUserService{repo: repo}
}

// List returns all profiles ordered by description.
func (s *typeUserService) List(ctx context.Context) ([]model.TypeUser, error) {
	return s.repo.List(ctx)
}
