package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	appcatalog "github.com/naturalbakery/shop/internal/application/catalog"
	"github.com/naturalbakery/shop/internal/domain/catalog"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"github.com/naturalbakery/shop/internal/infrastructure/persistence/memory"
	"github.com/naturalbakery/shop/pkg/errors"
	"github.com/naturalbakery/shop/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*appcatalog.Service, *gorm.DB) {
	t.Helper()

	db := testutils.SetupTestDB(t)
	svc := appcatalog.NewService(
		gormRepo.NewRecipeRepository(db),
		gormRepo.NewIngredientRepository(db),
		memory.NewCacheRepository(),
		time.Minute,
		zap.NewNop(),
	)
	return svc, db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAndGetRecipe(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)

	id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
		Title:    "基本の食パン",
		Category: "パン",
		PrepTime: 180,
		CookTime: 35,
		Servings: 8,
		Ingredients: []catalog.RecipeIngredient{
			{IngredientID: flour.ID, Quantity: 0.25, Unit: "kg"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	recipe, ingredients, err := svc.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "基本の食パン", recipe.Title)
	assert.Equal(t, 180, recipe.PrepTime)

	require.Len(t, ingredients, 1)
	assert.Equal(t, "強力粉", ingredients[0].Name)
	assert.Equal(t, 200.0, ingredients[0].PricePerUnit)
	assert.Equal(t, "kg", ingredients[0].IngredientUnit)
	assert.Equal(t, 0.25, ingredients[0].Quantity)
}

func TestCreateRecipesFromFactory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	faker := gofakeit.New(7)

	for i := 0; i < 5; i++ {
		fake := testutils.FakeRecipe(faker)

		id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
			Title:        fake.Title,
			Description:  fake.Description,
			Category:     fake.Category,
			Difficulty:   fake.Difficulty,
			PrepTime:     fake.PrepTime,
			CookTime:     fake.CookTime,
			Servings:     fake.Servings,
			Instructions: fake.Instructions,
		})
		require.NoError(t, err)

		recipe, _, err := svc.GetRecipe(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fake.Title, recipe.Title)
		assert.Equal(t, fake.PrepTime, recipe.PrepTime)
	}

	summaries, err := svc.ListRecipes(ctx, "パン")
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}

func TestCreateRecipeRejectsUnknownCategory(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateRecipe(context.Background(), appcatalog.CreateRecipeCommand{
		Title:    "ケーキ",
		Category: "ケーキ",
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestListRecipesFiltersByCategory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{Title: "食パン", Category: "パン"})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{Title: "ショートケーキ", Category: "洋菓子"})
	require.NoError(t, err)

	all, err := svc.ListRecipes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	breads, err := svc.ListRecipes(ctx, "パン")
	require.NoError(t, err)
	require.Len(t, breads, 1)
	assert.Equal(t, "食パン", breads[0].Title)
}

func TestListRecipesIncludesIngredientCount(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)
	salt := testutils.SeedIngredient(t, db, "塩", "調味料", "g", 1)

	_, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
		Title:    "食パン",
		Category: "パン",
		Ingredients: []catalog.RecipeIngredient{
			{IngredientID: flour.ID, Quantity: 0.25, Unit: "kg"},
			{IngredientID: salt.ID, Quantity: 4, Unit: "g"},
		},
	})
	require.NoError(t, err)

	recipes, err := svc.ListRecipes(ctx, "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 2, recipes[0].IngredientCount)
}

func TestUpdateRecipePartialPreservesUnsetFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
		Title:    "食パン",
		Category: "パン",
		PrepTime: 180,
		CookTime: 35,
	})
	require.NoError(t, err)

	err = svc.UpdateRecipe(ctx, id, appcatalog.UpdateRecipeCommand{
		Title:    strPtr("改良版食パン"),
		Servings: intPtr(10),
	})
	require.NoError(t, err)

	recipe, _, err := svc.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "改良版食パン", recipe.Title)
	assert.Equal(t, 10, recipe.Servings)
	assert.Equal(t, 180, recipe.PrepTime)
	assert.Equal(t, 35, recipe.CookTime)
	assert.Equal(t, "パン", recipe.Category)
}

func TestUpdateRecipeReplacesIngredientSet(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)
	rye := testutils.SeedIngredient(t, db, "ライ麦粉", "粉類", "kg", 400)

	id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
		Title:    "食パン",
		Category: "パン",
		Ingredients: []catalog.RecipeIngredient{
			{IngredientID: flour.ID, Quantity: 0.25, Unit: "kg"},
		},
	})
	require.NoError(t, err)

	newSet := []catalog.RecipeIngredient{
		{IngredientID: rye.ID, Quantity: 0.1, Unit: "kg"},
	}
	err = svc.UpdateRecipe(ctx, id, appcatalog.UpdateRecipeCommand{
		Ingredients: &newSet,
	})
	require.NoError(t, err)

	_, ingredients, err := svc.GetRecipe(ctx, id)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "ライ麦粉", ingredients[0].Name)
}

func TestUpdateRecipeValidatesMergedState(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{Title: "食パン", Category: "パン"})
	require.NoError(t, err)

	err = svc.UpdateRecipe(ctx, id, appcatalog.UpdateRecipeCommand{
		Category: strPtr("ケーキ"),
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestDeleteRecipeRemovesIngredientLinks(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)

	id, err := svc.CreateRecipe(ctx, appcatalog.CreateRecipeCommand{
		Title:    "食パン",
		Category: "パン",
		Ingredients: []catalog.RecipeIngredient{
			{IngredientID: flour.ID, Quantity: 0.25, Unit: "kg"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, id))

	_, _, err = svc.GetRecipe(ctx, id)
	assert.True(t, errors.Is(err, errors.CodeRecipeNotFound))

	var linkCount int64
	require.NoError(t, db.Model(&gormRepo.RecipeIngredientModel{}).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	// The referenced ingredient is untouched.
	var ingredientCount int64
	require.NoError(t, db.Model(&gormRepo.IngredientModel{}).Count(&ingredientCount).Error)
	assert.Equal(t, int64(1), ingredientCount)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	svc, _ := newService(t)

	err := svc.DeleteRecipe(context.Background(), 42)
	assert.True(t, errors.Is(err, errors.CodeRecipeNotFound))
}

func TestListAndGetIngredients(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)
	testutils.SeedIngredient(t, db, "無塩バター", "乳製品", "g", 3)

	all, err := svc.ListIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	flours, err := svc.ListIngredients(ctx, "粉類")
	require.NoError(t, err)
	require.Len(t, flours, 1)
	assert.Equal(t, "強力粉", flours[0].Name)

	got, err := svc.GetIngredient(ctx, flour.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.PricePerUnit)

	_, err = svc.GetIngredient(ctx, 9999)
	assert.True(t, errors.Is(err, errors.CodeIngredientNotFound))
}
