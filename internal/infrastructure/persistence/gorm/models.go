// Package gorm provides GORM model definitions and repository
// implementations for the shop.
package gorm

import (
	"time"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/domain/order"
	"github.com/naturalbakery/shop/internal/domain/user"
	"gorm.io/gorm"
)

// IngredientModel represents the GORM model for ingredients
type IngredientModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Category     string  `gorm:"type:varchar(50);not null;index"`
	Unit         string  `gorm:"type:varchar(50);not null"`
	PricePerUnit float64 `gorm:"not null"`
	ImageURL     string  `gorm:"type:text"`
	CreatedAt    time.Time
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"type:varchar(255);not null"`
	Description  string `gorm:"type:text"`
	Category     string `gorm:"type:varchar(50);not null;index"`
	Difficulty   string `gorm:"type:varchar(50)"`
	PrepTime     int    `gorm:"default:0"`
	CookTime     int    `gorm:"default:0"`
	Servings     int    `gorm:"default:0"`
	VideoURL     string `gorm:"type:text"`
	ImageURL     string `gorm:"type:text"`
	Instructions string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel links a recipe to an ingredient with a quantity.
// Rows are removed together with their recipe via the cascade constraint.
type RecipeIngredientModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	RecipeID     uint    `gorm:"not null;index"`
	IngredientID uint    `gorm:"not null;index"`
	Quantity     float64 `gorm:"not null"`
	Unit         string  `gorm:"type:varchar(50)"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// OrderModel represents the GORM model for orders
type OrderModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	CustomerName  string    `gorm:"type:varchar(255);not null"`
	CustomerEmail string    `gorm:"type:varchar(255);not null"`
	CustomerPhone string    `gorm:"type:varchar(50)"`
	TotalAmount   float64   `gorm:"not null"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel represents the GORM model for order line items. UnitPrice
// and Subtotal are price snapshots taken when the order was placed.
type OrderItemModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	OrderID      uint    `gorm:"not null;index"`
	IngredientID uint    `gorm:"not null;index"`
	Quantity     float64 `gorm:"not null"`
	UnitPrice    float64 `gorm:"not null"`
	Subtotal     float64 `gorm:"not null"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// UserModel represents the GORM model for registered users
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	BusinessName string `gorm:"type:varchar(255);not null"`
	BusinessType string `gorm:"type:varchar(100);not null"`
	OwnerName    string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	Role         string `gorm:"type:varchar(20);default:'user'"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// SessionModel represents the GORM model for login sessions
type SessionModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

// AllModels lists every model for schema migration.
func AllModels() []interface{} {
	return []interface{}{
		&IngredientModel{},
		&RecipeModel{},
		&RecipeIngredientModel{},
		&OrderModel{},
		&OrderItemModel{},
		&UserModel{},
		&SessionModel{},
	}
}

// AutoMigrate creates or updates the schema from the models. Used for
// SQLite; PostgreSQL deployments run the SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// IngredientToModel converts a domain ingredient to its GORM model
func IngredientToModel(i *catalog.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Unit:         i.Unit,
		PricePerUnit: i.PricePerUnit,
		ImageURL:     i.ImageURL,
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) catalog.Ingredient {
	return catalog.Ingredient{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Unit:         m.Unit,
		PricePerUnit: m.PricePerUnit,
		ImageURL:     m.ImageURL,
	}
}

// RecipeToModel converts a domain recipe to its GORM model, including
// ingredient link rows.
func RecipeToModel(r *catalog.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		VideoURL:     r.VideoURL,
		ImageURL:     r.ImageURL,
		Instructions: r.Instructions,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, ri := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, RecipeIngredientModel{
			RecipeID:     r.ID,
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
			Unit:         ri.Unit,
		})
	}
	return model
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *catalog.Recipe {
	r := &catalog.Recipe{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Difficulty:   m.Difficulty,
		PrepTime:     m.PrepTime,
		CookTime:     m.CookTime,
		Servings:     m.Servings,
		VideoURL:     m.VideoURL,
		ImageURL:     m.ImageURL,
		Instructions: m.Instructions,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, ri := range m.Ingredients {
		r.Ingredients = append(r.Ingredients, catalog.RecipeIngredient{
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
			Unit:         ri.Unit,
		})
	}
	return r
}

// OrderToModel converts a domain order to its GORM model
func OrderToModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}

// ModelToOrder converts a GORM model to a domain order
func ModelToOrder(m *OrderModel) order.Order {
	return order.Order{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		CustomerPhone: m.CustomerPhone,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		BusinessName: u.BusinessName,
		BusinessType: u.BusinessType,
		OwnerName:    u.OwnerName,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		BusinessName: m.BusinessName,
		BusinessType: m.BusinessType,
		OwnerName:    m.OwnerName,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		Role:         user.Role(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

// SessionToModel converts a domain session to its GORM model
func SessionToModel(s *user.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

// ModelToSession converts a GORM model to a domain session
func ModelToSession(m *SessionModel) *user.Session {
	return &user.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
