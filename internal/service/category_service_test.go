package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"xfood/internal/dto"
	xerrors "xfood/internal/errors"
	"xfood/internal/events"
	"xfood/internal/model"
)

func TestCategoryService_Get_MapsNotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("FindWithProducts", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCategoryService(repo, nil, &events.NopPublisher{})
	_, err := svc.Get(context.Background(), 9)

	assert.ErrorIs(t, err, xerrors.ErrCategoryNotFound)
	repo.AssertExpectations(t)
}

func TestCategoryService_Update_MapsNotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Update", mock.Anything, uint(9), "Ghost", "Nothing").Return(gorm.ErrRecordNotFound)

	svc := NewCategoryService(repo, nil, &events.NopPublisher{})
	err := svc.Update(context.Background(), 9, dto.CategoryInput{Name: "Ghost", Description: "Nothing"})

	assert.ErrorIs(t, err, xerrors.ErrCategoryNotFound)
	repo.AssertExpectations(t)
}

func TestCategoryService_Delete_PublishesEvent(t *testing.T) {
	repo := new(MockCategoryRepository)
	pub := new(MockPublisher)
	repo.On("Delete", mock.Anything, uint(4)).Return(nil)
	pub.On("Publish", events.CategoryDeleted, map[string]interface{}{"id": uint(4)}).Return(nil)

	svc := NewCategoryService(repo, nil, pub)
	assert.NoError(t, svc.Delete(context.Background(), 4))

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCategoryService_Create(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Category).ID = 11
		}).Return(nil)

	svc := NewCategoryService(repo, nil, &events.NopPublisher{})
	created, err := svc.Create(context.Background(), dto.CategoryInput{Name: "Snacks", Description: "Savoury"})

	assert.NoError(t, err)
	assert.Equal(t, uint(11), created.ID)
	assert.Equal(t, "Snacks", created.Name)
	repo.AssertExpectations(t)
}
