package testutils

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/domain/user"
	"github.com/stretchr/testify/require"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"gorm.io/gorm"
)

// SeedIngredient inserts an ingredient row and returns its domain form.
func SeedIngredient(t *testing.T, db *gorm.DB, name, category, unit string, pricePerUnit float64) catalog.Ingredient {
	t.Helper()

	model := gormRepo.IngredientModel{
		Name:         name,
		Category:     category,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
	}
	require.NoError(t, db.Create(&model).Error)

	return gormRepo.ModelToIngredient(&model)
}

// FakeRecipe builds an unsaved bread recipe with randomized text fields.
func FakeRecipe(faker *gofakeit.Faker) *catalog.Recipe {
	return &catalog.Recipe{
		Title:        faker.Sentence(3),
		Description:  faker.Sentence(8),
		Category:     string(catalog.CategoryBread),
		Difficulty:   "初級",
		PrepTime:     faker.Number(10, 120),
		CookTime:     faker.Number(10, 60),
		Servings:     faker.Number(1, 12),
		Instructions: faker.Sentence(12),
	}
}

// FakeRegistration builds randomized account fields for registration
// tests. Password is fixed so callers can log the account in.
func FakeRegistration(faker *gofakeit.Faker) (username, password, businessName, businessType, ownerName, email string) {
	return faker.Username(),
		"password1234",
		faker.Company(),
		"bakery",
		faker.Name(),
		faker.Email()
}

// SeedAdmin inserts an admin user with the given credentials.
func SeedAdmin(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()

	u, err := user.NewUser(username, password, "Test Bakery", "bakery", "Owner", username+"@example.com", 4)
	require.NoError(t, err)
	u.Role = user.RoleAdmin

	require.NoError(t, db.Create(gormRepo.UserToModel(u)).Error)
}
