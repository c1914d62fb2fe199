package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"xfood/internal/model"
)

// Ensure migrates the schema and loads the baseline fixtures. Each fixture
// group is only inserted when its table is empty, so running it repeatedly
// is safe.
func Ensure(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.TypeUser{},
		&model.Category{},
		&model.Product{},
		&model.User{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if err := ensureTypeUsers(db); err != nil {
		return err
	}
	if err := ensureCategories(db); err != nil {
		return err
	}
	if err := ensureProducts(db); err != nil {
		return err
	}
	return ensureUsers(db)
}

func ensureTypeUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.TypeUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	types := []model.TypeUser{
		{Description: "Usuário"},
		{Description: "Administrador"},
		{Description: "Gerente"},
	}
	return db.Create(&types).Error
}

func ensureCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []model.Category{
		{Name: "Lanche", Description: "Lanches e sanduíches"},
		{Name: "Bebida", Description: "Bebidas diversas"},
		{Name: "Sobremesa", Description: "Doces e sobremesas"},
	}
	return db.Create(&categories).Error
}

func ensureProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Category ids are looked up by name rather than assumed, an existing
	// database may have allocated them in a different order.
	ids, err := categoryIDs(db)
	if err != nil {
		return err
	}
	lanche, bebida, sobremesa := ids["Lanche"], ids["Bebida"], ids["Sobremesa"]

	products := []model.Product{
		product("X-Burger", "Pão, hambúrguer, queijo e molho da casa", "22.90", 50, lanche),
		product("X-Salada", "Pão, hambúrguer, queijo, alface e tomate", "24.90", 40, lanche),
		product("X-Bacon", "Hambúrguer com bacon crocante", "28.90", 35, lanche),
		product("Frango Crispy", "Sanduíche de frango empanado", "26.90", 30, lanche),
		product("Cheddar Melt", "Hambúrguer com cheddar cremoso", "29.90", 25, lanche),
		product("Veggie Burger", "Grão de bico e legumes grelhados", "27.90", 20, lanche),
		product("Dog Tradicional", "Salsicha, purê, batata palha", "18.90", 50, lanche),
		product("Dog Duplo", "Duas salsichas e queijo", "22.90", 40, lanche),
		product("Wrap de Frango", "Frango, alface, tomate e molho", "23.90", 30, lanche),
		product("Wrap Veggie", "Legumes grelhados e hummus", "23.90", 25, lanche),

		product("Refrigerante Lata", "350 ml", "6.50", 120, bebida),
		product("Suco de Laranja", "Natural 300 ml", "9.90", 60, bebida),
		product("Água Mineral", "Sem gás 500 ml", "4.50", 150, bebida),
		product("Água com Gás", "Com gás 500 ml", "5.00", 100, bebida),
		product("Chá Gelado", "Pêssego 300 ml", "7.90", 80, bebida),
		product("Guaraná 600 ml", "Garrafa", "8.90", 70, bebida),
		product("Coca-Cola 600 ml", "Garrafa", "9.90", 70, bebida),
		product("Suco de Uva", "Integral 300 ml", "10.90", 50, bebida),
		product("Limonada", "300 ml", "7.50", 60, bebida),
		product("Café Gelado", "Doce na medida 300 ml", "11.90", 40, bebida),

		product("Brownie", "Chocolate com nozes", "12.90", 30, sobremesa),
		product("Cookie", "Gotas de chocolate", "6.90", 80, sobremesa),
		product("Cheesecake", "Calda de frutas vermelhas", "14.90", 25, sobremesa),
		product("Pudim", "Leite condensado", "9.90", 40, sobremesa),
		product("Mousse de Maracujá", "Cremoso", "9.90", 35, sobremesa),
		product("Torta de Limão", "Massa crocante e creme de limão", "13.90", 20, sobremesa),
		product("Açaí 300 ml", "Com granola", "15.90", 30, sobremesa),
		product("Sorvete 2 bolas", "Sabores do dia", "11.90", 50, sobremesa),
		product("Petit Gâteau", "Bolo quente + sorvete", "18.90", 15, sobremesa),
		product("Romeu e Julieta", "Goiabada e queijo minas", "10.90", 25, sobremesa),
	}
	return db.Create(&products).Error
}

func ensureUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	roles, err := typeUserIDs(db)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			Name:       "Administrador",
			Email:      "admin@xfood.com",
			Password:   "123",
			DateBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			TypeUserID: roles["Administrador"],
			Active:     true,
		},
		{
			Name:       "Gerente",
			Email:      "gerente@xfood.com",
			Password:   "123",
			DateBirth:  time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
			TypeUserID: roles["Gerente"],
			Active:     true,
		},
		{
			Name:       "Usuário",
			Email:      "usuario@xfood.com",
			Password:   "123",
			DateBirth:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			TypeUserID: roles["Usuário"],
			Active:     true,
		},
	}
	return db.Create(&users).Error
}

func categoryIDs(db *gorm.DB) (map[string]uint, error) {
	var categories []model.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}
	for _, name := range []string{"Lanche", "Bebida", "Sobremesa"} {
		if _, ok := ids[name]; !ok {
			return nil, fmt.Errorf("seed: category %q missing", name)
		}
	}
	return ids, nil
}

func typeUserIDs(db *gorm.DB) (map[string]uint, error) {
	var types []model.TypeUser
	if err := db.Find(&types).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(types))
	for _, t := range types {
		ids[t.Description] = t.ID
	}
	for _, desc := range []string{"Usuário", "Administrador", "Gerente"} {
		if _, ok := ids[desc]; !ok {
			return nil, fmt.Errorf("seed: profile %q missing", desc)
		}
	}
	return ids, nil
}

func product(name, description, price string, stock int, categoryID uint) model.Product {
	desc := description
	return model.Product{
		Name:        name,
		Description: &desc,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		CategoryID:  categoryID,
	}
}
