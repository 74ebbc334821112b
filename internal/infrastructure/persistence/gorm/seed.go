package gorm

import (
	"fmt"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/domain/user"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the demo catalog and the initial admin account. It is a
// no-op when ingredients already exist, so restarts do not duplicate rows.
func Seed(db *gorm.DB, bcryptCost int, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&IngredientModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	ingredients := []IngredientModel{
		{Name: "強力粉", Category: "粉類", Unit: "kg", PricePerUnit: 200},
		{Name: "薄力粉", Category: "粉類", Unit: "kg", PricePerUnit: 180},
		{Name: "全粒粉", Category: "粉類", Unit: "kg", PricePerUnit: 350},
		{Name: "ライ麦粉", Category: "粉類", Unit: "kg", PricePerUnit: 400},
		{Name: "ドライイースト", Category: "酵母", Unit: "g", PricePerUnit: 3},
		{Name: "天然酵母", Category: "酵母", Unit: "g", PricePerUnit: 8},
		{Name: "グラニュー糖", Category: "糖類", Unit: "kg", PricePerUnit: 250},
		{Name: "きび砂糖", Category: "糖類", Unit: "kg", PricePerUnit: 380},
		{Name: "はちみつ", Category: "糖類", Unit: "g", PricePerUnit: 2},
		{Name: "無塩バター", Category: "乳製品", Unit: "g", PricePerUnit: 3},
		{Name: "牛乳", Category: "乳製品", Unit: "ml", PricePerUnit: 1},
		{Name: "生クリーム", Category: "乳製品", Unit: "ml", PricePerUnit: 2},
		{Name: "クリームチーズ", Category: "乳製品", Unit: "g", PricePerUnit: 4},
		{Name: "卵", Category: "卵", Unit: "個", PricePerUnit: 30},
		{Name: "塩", Category: "調味料", Unit: "g", PricePerUnit: 1},
		{Name: "チョコレート", Category: "製菓材料", Unit: "g", PricePerUnit: 5},
		{Name: "アーモンドプードル", Category: "製菓材料", Unit: "g", PricePerUnit: 6},
		{Name: "バニラエッセンス", Category: "製菓材料", Unit: "ml", PricePerUnit: 10},
		{Name: "いちご", Category: "フルーツ", Unit: "パック", PricePerUnit: 500},
		{Name: "レーズン", Category: "フルーツ", Unit: "g", PricePerUnit: 2},
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return fmt.Errorf("failed to seed ingredients: %w", err)
	}

	byName := make(map[string]uint, len(ingredients))
	for _, i := range ingredients {
		byName[i.Name] = i.ID
	}

	recipes := []RecipeModel{
		{
			Title:        "基本の食パン",
			Description:  "毎朝食べたいシンプルな食パン。しっとりふわふわに仕上がります。",
			Category:     string(catalog.CategoryBread),
			Difficulty:   "初級",
			PrepTime:     180,
			CookTime:     35,
			Servings:     8,
			Instructions: "1. 材料を混ぜてこねる\n2. 一次発酵 60分\n3. 成形して型に入れる\n4. 二次発酵 40分\n5. 200度で35分焼く",
			Ingredients: []RecipeIngredientModel{
				{IngredientID: byName["強力粉"], Quantity: 0.25, Unit: "kg"},
				{IngredientID: byName["ドライイースト"], Quantity: 3, Unit: "g"},
				{IngredientID: byName["無塩バター"], Quantity: 20, Unit: "g"},
				{IngredientID: byName["牛乳"], Quantity: 180, Unit: "ml"},
				{IngredientID: byName["塩"], Quantity: 4, Unit: "g"},
			},
		},
		{
			Title:        "カンパーニュ",
			Description:  "ライ麦の香ばしさが広がる田舎パン。天然酵母でじっくり発酵させます。",
			Category:     string(catalog.CategoryBread),
			Difficulty:   "上級",
			PrepTime:     720,
			CookTime:     40,
			Servings:     6,
			Instructions: "1. 粉と酵母を合わせてオートリーズ\n2. 低温で長時間発酵\n3. 成形してバヌトンで二次発酵\n4. クープを入れて高温で焼く",
			Ingredients: []RecipeIngredientModel{
				{IngredientID: byName["強力粉"], Quantity: 0.2, Unit: "kg"},
				{IngredientID: byName["ライ麦粉"], Quantity: 0.05, Unit: "kg"},
				{IngredientID: byName["天然酵母"], Quantity: 50, Unit: "g"},
				{IngredientID: byName["塩"], Quantity: 5, Unit: "g"},
			},
		},
		{
			Title:        "いちごのショートケーキ",
			Description:  "ふんわりスポンジとたっぷりの生クリーム。お祝いの定番ケーキです。",
			Category:     string(catalog.CategoryPastry),
			Difficulty:   "中級",
			PrepTime:     60,
			CookTime:     25,
			Servings:     6,
			Instructions: "1. スポンジを焼いて冷ます\n2. 生クリームを泡立てる\n3. スポンジをスライスしていちごとクリームを挟む\n4. 全体をナッペして飾る",
			Ingredients: []RecipeIngredientModel{
				{IngredientID: byName["薄力粉"], Quantity: 0.09, Unit: "kg"},
				{IngredientID: byName["グラニュー糖"], Quantity: 0.09, Unit: "kg"},
				{IngredientID: byName["卵"], Quantity: 3, Unit: "個"},
				{IngredientID: byName["生クリーム"], Quantity: 300, Unit: "ml"},
				{IngredientID: byName["いちご"], Quantity: 1, Unit: "パック"},
			},
		},
		{
			Title:        "ガトーショコラ",
			Description:  "濃厚なチョコレートの焼き菓子。冷やしても温めても楽しめます。",
			Category:     string(catalog.CategoryPastry),
			Difficulty:   "初級",
			PrepTime:     30,
			CookTime:     40,
			Servings:     8,
			Instructions: "1. チョコレートとバターを湯煎で溶かす\n2. 卵と砂糖を混ぜる\n3. 粉類を合わせて型に流す\n4. 170度で40分焼く",
			Ingredients: []RecipeIngredientModel{
				{IngredientID: byName["チョコレート"], Quantity: 200, Unit: "g"},
				{IngredientID: byName["無塩バター"], Quantity: 100, Unit: "g"},
				{IngredientID: byName["薄力粉"], Quantity: 0.04, Unit: "kg"},
				{IngredientID: byName["グラニュー糖"], Quantity: 0.09, Unit: "kg"},
				{IngredientID: byName["卵"], Quantity: 3, Unit: "個"},
			},
		},
	}
	if err := db.Create(&recipes).Error; err != nil {
		return fmt.Errorf("failed to seed recipes: %w", err)
	}

	if err := seedAdmin(db, bcryptCost); err != nil {
		return err
	}

	logger.Info("Demo data seeded",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("recipes", len(recipes)),
	)

	return nil
}

// seedAdmin creates the initial admin account. The password is intended
// for local development; deployments change it on first login.
func seedAdmin(db *gorm.DB, bcryptCost int) error {
	var count int64
	if err := db.Model(&UserModel{}).Where("role = ?", string(user.RoleAdmin)).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin state: %w", err)
	}
	if count > 0 {
		return nil
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := UserModel{
		Username:     "admin",
		PasswordHash: string(hash),
		BusinessName: "ナチュラルベーカリー",
		BusinessType: "bakery",
		OwnerName:    "管理者",
		Email:        "admin@naturalbakery.example",
		Role:         string(user.RoleAdmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
