package models

import (
	"encoding/json"
	"strings"
	"time"
)

const PLAN_STATUS_ACTIVE = "active"
const PLAN_STATUS_INACTIVE = "inactive"

// Plan representa um plano de internet contratável (velocidade, preço e
// lista de vantagens). A lista de features fica serializada em JSON na
// coluna features_json; a API sempre entrega a fatia decodificada.
type Plan struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Price        float64    `gorm:"not null;default:0" json:"price" form:"price"`
	Speed        string     `gorm:"not null;default:''" json:"speed" form:"speed"`
	FeaturesJSON string     `gorm:"column:features_json;type:text" json:"-"`
	Features     []string   `gorm:"-" json:"features"`
	Status       string     `gorm:"not null;default:'active'" json:"status"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

// DecodeFeatures materializa Features a partir da coluna serializada.
// Coluna vazia ou JSON inválido viram fatia vazia, nunca nil.
func (p *Plan) DecodeFeatures() {
	p.Features = []string{}
	raw := strings.TrimSpace(p.FeaturesJSON)
	if raw == "" {
		return
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return
	}
	if features != nil {
		p.Features = features
	}
}

// EncodeFeatures serializa a fatia para a coluna features_json.
func (p *Plan) EncodeFeatures(features []string) error {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	if err != nil {
		return err
	}
	p.FeaturesJSON = string(b)
	p.Features = features
	return nil
}
