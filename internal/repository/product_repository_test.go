package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"xfood/internal/dto"
	"xfood/internal/model"
)

// seedCatalog inserts two categories and a handful of products with
// predictable names and returns the category ids.
func seedCatalog(t *testing.T, db *gorm.DB) (snackID, drinkID uint) {
	t.Helper()

	snacks := model.Category{Name: "Snacks", Description: "Savoury things"}
	drinks := model.Category{Name: "Drinks", Description: "Cold things"}
	mustCreate(t, db, &snacks)
	mustCreate(t, db, &drinks)

	products := []model.Product{
		{Name: "Burger", Description: strptr("Beef and cheese"), Price: price("22.90"), Stock: 50, CategoryID: snacks.ID},
		{Name: "Fries", Description: strptr("Crispy potato"), Price: price("9.90"), Stock: 80, CategoryID: snacks.ID},
		{Name: "Wrap", Description: nil, Price: price("19.50"), Stock: 30, CategoryID: snacks.ID},
		{Name: "Cola", Description: strptr("Soft drink 350 ml"), Price: price("6.50"), Stock: 120, CategoryID: drinks.ID},
		{Name: "Juice", Description: strptr("Orange, fresh"), Price: price("9.90"), Stock: 60, CategoryID: drinks.ID},
	}
	for i := range products {
		mustCreate(t, db, &products[i])
	}
	return snacks.ID, drinks.ID
}

func TestProductSearch_OrderedProjection(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	total, items, err := repo.Search(context.Background(), ProductFilter{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, items, 5)

	// Alphabetical by product name, category name filled from the join.
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Burger", "Cola", "Fries", "Juice", "Wrap"}, names)
	assert.Equal(t, "Snacks", items[0].CategoryName)
	assert.Equal(t, "Drinks", items[1].CategoryName)

	// Wrap was stored without a description.
	assert.Nil(t, items[4].Description)
	assert.True(t, price("19.50").Equal(items[4].Price))
}

func TestProductSearch_CategoryFilter(t *testing.T) {
	db := openTestDB(t)
	_, drinkID := seedCatalog(t, db)
	repo := NewProductRepository(db)

	total, items, err := repo.Search(context.Background(), ProductFilter{CategoryID: &drinkID})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, drinkID, it.CategoryID)
	}
}

func TestProductSearch_QueryMatchesNameOrDescription(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	// "potato" only appears in the Fries description.
	total, items, err := repo.Search(context.Background(), ProductFilter{Query: "potato"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Fries", items[0].Name)

	// Surrounding whitespace is trimmed before matching.
	total, items, err = repo.Search(context.Background(), ProductFilter{Query: "  Cola  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Cola", items[0].Name)

	// A blank query matches everything.
	total, _, err = repo.Search(context.Background(), ProductFilter{Query: "   "})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestProductSearch_TotalCountsBeforeSlicing(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	total, items, err := repo.Search(context.Background(), ProductFilter{Page: 2, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Fries", items[0].Name)
	assert.Equal(t, "Juice", items[1].Name)
}

func TestProductSearch_ClampsPageAndSize(t *testing.T) {
	db := openTestDB(t)

	category := model.Category{Name: "Bulk", Description: "Filler"}
	mustCreate(t, db, &category)
	for i := 0; i < 15; i++ {
		p := model.Product{
			Name:       fmt.Sprintf("Item %02d", i),
			Price:      price("1.00"),
			Stock:      1,
			CategoryID: category.ID,
		}
		mustCreate(t, db, &p)
	}
	repo := NewProductRepository(db)

	// Page 0 falls back to page 1; size 0 falls back to 12.
	total, items, err := repo.Search(context.Background(), ProductFilter{Page: 0, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, items, 12)
	assert.Equal(t, "Item 00", items[0].Name)

	// Size above the cap falls back to 12 as well.
	_, items, err = repo.Search(context.Background(), ProductFilter{Page: 1, Size: 101})
	require.NoError(t, err)
	assert.Len(t, items, 12)

	// A negative page behaves like page 1.
	_, items, err = repo.Search(context.Background(), ProductFilter{Page: -3, Size: 5})
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Item 00", items[0].Name)
}

func TestProductSearch_PastLastPageIsEmpty(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	total, items, err := repo.Search(context.Background(), ProductFilter{Page: 9, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProductFindByID(t *testing.T) {
	db := openTestDB(t)
	snackID, _ := seedCatalog(t, db)
	repo := NewProductRepository(db)

	var burger model.Product
	require.NoError(t, db.Where("name = ?", "Burger").First(&burger).Error)

	found, err := repo.FindByID(context.Background(), burger.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger", found.Name)
	assert.Equal(t, snackID, found.CategoryID)
	assert.Equal(t, "Snacks", found.CategoryName)

	_, err = repo.FindByID(context.Background(), 99999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductUpdate(t *testing.T) {
	db := openTestDB(t)
	_, drinkID := seedCatalog(t, db)
	repo := NewProductRepository(db)

	var burger model.Product
	require.NoError(t, db.Where("name = ?", "Burger").First(&burger).Error)

	err := repo.Update(context.Background(), burger.ID, dto.ProductInput{
		Name:       "Burger XL",
		Price:      price("27.90"),
		Stock:      10,
		CategoryID: drinkID,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), burger.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger XL", found.Name)
	assert.True(t, price("27.90").Equal(found.Price))
	assert.Equal(t, drinkID, found.CategoryID)
	// Description was not sent, so the update cleared it.
	assert.Nil(t, found.Description)
}

func TestProductUpdate_MissingIDFails(t *testing.T) {
	db := openTestDB(t)
	snackID, _ := seedCatalog(t, db)
	repo := NewProductRepository(db)

	err := repo.Update(context.Background(), 99999, dto.ProductInput{
		Name:       "Ghost",
		Price:      price("1.00"),
		CategoryID: snackID,
	})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductDelete_MissingIDIsNoOp(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	require.NoError(t, repo.Delete(context.Background(), 99999))

	var burger model.Product
	require.NoError(t, db.Where("name = ?", "Burger").First(&burger).Error)
	require.NoError(t, repo.Delete(context.Background(), burger.ID))

	_, err := repo.FindByID(context.Background(), burger.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Second delete of the same id is equally fine.
	require.NoError(t, repo.Delete(context.Background(), burger.ID))
}
