package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"xfood/internal/model"
)

func TestCategoryList_OrderedByName(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, &model.Category{Name: "Sweets", Description: "Desserts"})
	mustCreate(t, db, &model.Category{Name: "Drinks", Description: "Beverages"})
	mustCreate(t, db, &model.Category{Name: "Mains", Description: "Main dishes"})
	repo := NewCategoryRepository(db)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Drinks", categories[0].Name)
	assert.Equal(t, "Mains", categories[1].Name)
	assert.Equal(t, "Sweets", categories[2].Name)
}

func TestCategoryList_EmptyIsNotNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCategoryFindWithProducts(t *testing.T) {
	db := openTestDB(t)
	category := model.Category{Name: "Snacks", Description: "Savoury"}
	mustCreate(t, db, &category)
	mustCreate(t, db, &model.Product{Name: "Burger", Price: price("22.90"), Stock: 5, CategoryID: category.ID})
	mustCreate(t, db, &model.Product{Name: "Fries", Price: price("9.90"), Stock: 5, CategoryID: category.ID})
	repo := NewCategoryRepository(db)

	found, err := repo.FindWithProducts(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Len(t, found.Products, 2)
}

func TestCategoryHasProducts(t *testing.T) {
	db := openTestDB(t)
	occupied := model.Category{Name: "Snacks", Description: "Savoury"}
	empty := model.Category{Name: "Drinks", Description: "Beverages"}
	mustCreate(t, db, &occupied)
	mustCreate(t, db, &empty)
	mustCreate(t, db, &model.Product{Name: "Burger", Price: price("22.90"), Stock: 5, CategoryID: occupied.ID})
	repo := NewCategoryRepository(db)

	has, err := repo.HasProducts(context.Background(), occupied.ID)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasProducts(context.Background(), empty.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCategoryNameExists(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, &model.Category{Name: "Snacks", Description: "Savoury"})
	repo := NewCategoryRepository(db)

	exists, err := repo.NameExists(context.Background(), "Snacks")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.NameExists(context.Background(), "Missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCategoryUpdate(t *testing.T) {
	db := openTestDB(t)
	category := model.Category{Name: "Snacks", Description: "Savoury"}
	mustCreate(t, db, &category)
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Update(context.Background(), category.ID, "Street Food", "Quick bites"))

	found, err := repo.FindByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Street Food", found.Name)
	assert.Equal(t, "Quick bites", found.Description)
}

func TestCategoryUpdate_MissingIDFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	err := repo.Update(context.Background(), 99999, "Ghost", "Nothing here")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategoryDelete_MissingIDIsNoOp(t *testing.T) {
	db := openTestDB(t)
	category := model.Category{Name: "Snacks", Description: "Savoury"}
	mustCreate(t, db, &category)
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Delete(context.Background(), 99999))
	require.NoError(t, repo.Delete(context.Background(), category.ID))

	_, err := repo.FindByID(context.Background(), category.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
