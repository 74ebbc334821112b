// Package content provides ContentProvider implementations. The static
// provider returns fixed suggestions; a generative backend can replace it
// behind the same port.
package content

import (
	"context"
	"fmt"

	"github.com/naturalbakery/shop/internal/domain/catalog"
	"github.com/naturalbakery/shop/internal/ports/outbound"
)

// StaticProvider serves canned content without calling any external
// service.
type StaticProvider struct{}

// NewStaticProvider creates a new static content provider
func NewStaticProvider() outbound.ContentProvider {
	return &StaticProvider{}
}

// GenerateArrangement returns a fixed variation built around the recipe
// title and the customer's request text.
func (p *StaticProvider) GenerateArrangement(ctx context.Context, r *catalog.Recipe, request string) (*outbound.Arrangement, error) {
	title := fmt.Sprintf("%s 季節のアレンジ", r.Title)
	description := fmt.Sprintf("%sをベースに、季節の素材を合わせたアレンジです。", r.Title)
	if request != "" {
		description = fmt.Sprintf("%sをベースに「%s」の要望を取り入れたアレンジです。", r.Title, request)
	}

	return &outbound.Arrangement{
		Title:       title,
		Description: description,
		Hints: []string{
			"仕上げに旬のフルーツを添えると彩りが良くなります",
			"砂糖を1割減らすと素材の風味が際立ちます",
			"焼成温度を10度下げてじっくり焼くとしっとり仕上がります",
		},
	}, nil
}

// TrendingKeywords returns fixed trend data.
func (p *StaticProvider) TrendingKeywords(ctx context.Context) ([]outbound.Trend, error) {
	return []outbound.Trend{
		{Keyword: "マリトッツォ", Score: 92},
		{Keyword: "高加水パン", Score: 88},
		{Keyword: "米粉スイーツ", Score: 81},
		{Keyword: "塩パン", Score: 75},
		{Keyword: "バスクチーズケーキ", Score: 69},
	}, nil
}

// LocalShops returns fixed nearby shop suggestions.
func (p *StaticProvider) LocalShops(ctx context.Context) ([]outbound.Shop, error) {
	return []outbound.Shop{
		{Name: "ベーカリー コフレ", Address: "東京都世田谷区1-2-3", Category: "パン"},
		{Name: "パティスリー ルミエール", Address: "東京都目黒区4-5-6", Category: "洋菓子"},
		{Name: "ブーランジェリー 麦の穂", Address: "東京都杉並区7-8-9", Category: "パン"},
	}, nil
}
