package services

import (
	"fmt"

	"conecta/models"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
)

// ProductService expõe o catálogo da lojinha e a baixa de estoque.
// Sem reserva nem carrinho: a compra é um decremento condicional único.
type ProductService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewProductService(db *gorm.DB, log zerolog.Logger) *ProductService {
	return &ProductService{db: db, log: log}
}

// List devolve os produtos ativos, destaques primeiro e depois os mais
// novos. category vazio não filtra; featuredOnly limita aos destaques.
func (s *ProductService) List(category string, featuredOnly bool) ([]models.Product, error) {
	query := s.db.Where("status = ?", models.PRODUCT_STATUS_ACTIVE)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var products []models.Product
	if err := query.Order("featured desc, created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listar produtos: %v: %w", err, ErrStorage)
	}

	for i := range products {
		products[i].DecodeSpecs()
	}
	return products, nil
}

// FindByID busca um produto ativo.
func (s *ProductService) FindByID(id int64) (models.Product, error) {
	var product models.Product
	err := s.db.Where("id = ? AND status = ?", id, models.PRODUCT_STATUS_ACTIVE).
		First(&product).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Product{}, fmt.Errorf("produto %d: %w", id, ErrNotFound)
		}
		return models.Product{}, fmt.Errorf("buscar produto: %v: %w", err, ErrStorage)
	}

	product.DecodeSpecs()
	return product, nil
}

// Purchase dá baixa no estoque em um único statement condicional
// (stock = stock - qtd somente quando stock >= qtd), então duas compras
// concorrentes nunca deixam o estoque negativo.
func (s *ProductService) Purchase(id int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantidade deve ser maior que zero: %w", ErrValidation)
	}

	result := s.db.Model(&models.Product{}).
		Where("id = ? AND status = ? AND stock >= ?", id, models.PRODUCT_STATUS_ACTIVE, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("baixar estoque: %v: %w", result.Error, ErrStorage)
	}

	if result.RowsAffected == 0 {
		// Decremento não aconteceu: ou o produto não existe, ou não há
		// estoque suficiente. Distingue para o chamador.
		if _, err := s.FindByID(id); err != nil {
			return err
		}
		return fmt.Errorf("estoque insuficiente: %w", ErrValidation)
	}

	s.log.Info().Int64("product_id", id).Int("quantity", quantity).Msg("estoque baixado")
	return nil
}
