package models

import (
	"encoding/json"
	"strings"
	"time"
)

const PRODUCT_STATUS_ACTIVE = "active"
const PRODUCT_STATUS_INACTIVE = "inactive"

// Product representa um item da lojinha (celulares, fones etc).
// Especificações ficam serializadas em JSON na coluna specs_json.
type Product struct {
	ID        int64             `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string            `gorm:"not null" json:"name" form:"name"`
	Price     float64           `gorm:"not null;default:0" json:"price" form:"price"`
	Category  string            `gorm:"not null;index" json:"category" form:"category"`
	Stock     int               `gorm:"not null;default:0" json:"stock"`
	Featured  bool              `gorm:"not null;default:false" json:"featured"`
	SpecsJSON string            `gorm:"column:specs_json;type:text" json:"-"`
	Specs     map[string]string `gorm:"-" json:"specs"`
	Status    string            `gorm:"not null;default:'active'" json:"status"`
	CreatedAt *time.Time        `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// DecodeSpecs materializa Specs a partir da coluna serializada.
func (p *Product) DecodeSpecs() {
	p.Specs = map[string]string{}
	raw := strings.TrimSpace(p.SpecsJSON)
	if raw == "" {
		return
	}
	var specs map[string]string
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return
	}
	if specs != nil {
		p.Specs = specs
	}
}

// EncodeSpecs serializa o mapa para a coluna specs_json.
func (p *Product) EncodeSpecs(specs map[string]string) error {
	if specs == nil {
		specs = map[string]string{}
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return err
	}
	p.SpecsJSON = string(b)
	p.Specs = specs
	return nil
}

// ProductCategory descreve uma categoria fixa da loja.
type ProductCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ProductCategories é a lista fechada exibida pela loja.
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		{Value: "celular", Label: "Celulares", Icon: "📱"},
		{Value: "fone", Label: "Fones de Ouvido", Icon: "🎧"},
		{Value: "tablet", Label: "Tablets", Icon: "📱"},
		{Value: "acessorio", Label: "Acessórios", Icon: "🔌"},
		{Value: "outros", Label: "Outros", Icon: "📦"},
	}
}
