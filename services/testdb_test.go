package services

import (
	"testing"
	"time"

	"conecta/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/rs/zerolog"
)

// newTestDB abre um sqlite em memória com o schema completo. Uma única
// conexão, senão cada conexão do pool enxerga um banco diferente.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("abrir sqlite em memória: %v", err)
	}
	db.DB().SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Account{},
		&models.Plan{},
		&models.Subscription{},
		&models.Invoice{},
		&models.Ticket{},
		&models.Product{},
	).Error
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedAccount(t *testing.T, db *gorm.DB, email string) models.Account {
	t.Helper()
	account := models.Account{
		Name:     "Cliente Teste",
		Email:    email,
		Password: "hash-irrelevante",
		Status:   models.ACCOUNT_STATUS_ACTIVE,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("criar conta de teste: %v", err)
	}
	return account
}

func seedPlan(t *testing.T, db *gorm.DB, name string, price float64, status string, features []string) models.Plan {
	t.Helper()
	plan := models.Plan{
		Name:   name,
		Price:  price,
		Speed:  "300 Mega",
		Status: status,
	}
	if err := plan.EncodeFeatures(features); err != nil {
		t.Fatalf("serializar features: %v", err)
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("criar plano de teste: %v", err)
	}
	return plan
}

func fixedTime(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}
