// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use-case contracts the HTTP layer depends on.
package inbound

import (
	"context"

	appauth "github.com/naturalbakery/shop/internal/application/auth"
	appcatalog "github.com/naturalbakery/shop/internal/application/catalog"
	apporder "github.com/naturalbakery/shop/internal/application/order"
	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/domain/order"
	"github.com/naturalbakery/shop/internal/domain/user"
)

// CatalogService exposes recipe and ingredient use cases.
type CatalogService interface {
	ListRecipes(ctx context.Context, category string) ([]catalog.RecipeSummary, error)
	GetRecipe(ctx context.Context, id uint) (*catalog.Recipe, []catalog.ResolvedIngredient, error)
	CreateRecipe(ctx context.Context, cmd appcatalog.CreateRecipeCommand) (uint, error)
	UpdateRecipe(ctx context.Context, id uint, cmd appcatalog.UpdateRecipeCommand) error
	DeleteRecipe(ctx context.Context, id uint) error
	ListIngredients(ctx context.Context, category string) ([]catalog.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*catalog.Ingredient, error)
}

// OrderService exposes order placement and admin order reads.
type OrderService interface {
	CreateOrder(ctx context.Context, cmd apporder.CreateOrderCommand) (*apporder.Receipt, error)
	ListOrders(ctx context.Context) ([]order.Summary, error)
	GetOrder(ctx context.Context, id uint) (*order.Order, []order.ItemDetail, error)
	ListCustomers(ctx context.Context) ([]user.Public, error)
}

// AuthService exposes registration, login and session resolution.
type AuthService interface {
	Register(ctx context.Context, cmd appauth.RegisterCommand) (*user.Public, error)
	Login(ctx context.Context, username, password string) (*appauth.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*appauth.Principal, error)
	CurrentUser(ctx context.Context, userID uint) (*user.Public, error)
}
