// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/domain/order"
	"github.com/naturalbakery/shop/internal/domain/user"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	// List returns all recipes, each annotated with its ingredient count.
	// A non-empty category filters by exact match.
	List(ctx context.Context, category string) ([]catalog.RecipeSummary, error)

	// FindByID returns the recipe row without its ingredient links.
	FindByID(ctx context.Context, id uint) (*catalog.Recipe, error)

	// ResolveIngredients returns the recipe's ingredient links joined with
	// the ingredient rows they reference.
	ResolveIngredients(ctx context.Context, recipeID uint) ([]catalog.ResolvedIngredient, error)

	// Create inserts the recipe and its ingredient links atomically,
	// populating ID and timestamps.
	Create(ctx context.Context, r *catalog.Recipe) error

	// Update saves the recipe row. When replaceIngredients is true the
	// existing link set is deleted and r.Ingredients inserted in its place,
	// all within one transaction.
	Update(ctx context.Context, r *catalog.Recipe, replaceIngredients bool) error

	// Delete removes the recipe; ingredient links go with it via cascade.
	Delete(ctx context.Context, id uint) error
}

// IngredientRepository defines the interface for ingredient reads.
// Ingredients are seed-managed, so there are no write operations.
type IngredientRepository interface {
	List(ctx context.Context, category string) ([]catalog.Ingredient, error)
	FindByID(ctx context.Context, id uint) (*catalog.Ingredient, error)

	// FindByIDs returns the matching ingredients keyed by id. Missing ids
	// are simply absent from the map; callers decide whether that is fatal.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]catalog.Ingredient, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// CreateWithItems inserts the order row and all its items in a single
	// transaction. Either everything is persisted or nothing is.
	CreateWithItems(ctx context.Context, o *order.Order, items []order.Item) error

	// List returns all orders newest first, annotated with item counts.
	List(ctx context.Context) ([]order.Summary, error)

	FindByID(ctx context.Context, id uint) (*order.Order, error)

	// ItemsByOrderID returns the order's items joined with ingredient
	// display fields.
	ItemsByOrderID(ctx context.Context, orderID uint) ([]order.ItemDetail, error)
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]user.User, error)
}

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	Create(ctx context.Context, s *user.Session) error
	FindByToken(ctx context.Context, token string) (*user.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Arrangement is a generated variation of a recipe.
type Arrangement struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Hints       []string `json:"hints"`
}

// Trend is a trending keyword with a relative score.
type Trend struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
}

// Shop is a nearby shop suggestion.
type Shop struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
}

// ContentProvider generates supplementary shop content. The default
// implementation returns static data; a real generative backend can be
// substituted without touching the core.
type ContentProvider interface {
	GenerateArrangement(ctx context.Context, r *catalog.Recipe, request string) (*Arrangement, error)
	TrendingKeywords(ctx context.Context) ([]Trend, error)
	LocalShops(ctx context.Context) ([]Shop, error)
}
