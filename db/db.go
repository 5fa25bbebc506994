package db

import (
	"os"
	"path/filepath"

	"conecta/config"
	"conecta/logger"
	"conecta/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com DB (sqlite3 por padrão) e faz automigrate básico.
// Para habilitar automigrate em ambientes de dev, exporte AUTOMIGRATE=1.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	log := logger.L()

	if database == "postgres" || database == "postgresql" {
		log.Info().Msg("utilizando conexão com o postgresql")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Info().Msg("utilizando conexão com o sqlite3")
		dir := filepath.Dir("db/database.db")
		db, err = gorm.Open("sqlite3", dir+"/database.db")
	}

	if err != nil {
		log.Error().Err(err).Msg("falha ao conectar no banco de dados")
		return nil, err
	}

	db.LogMode(conf.Debug)

	if os.Getenv("AUTOMIGRATE") == "1" {
		db.AutoMigrate(
			&models.Account{},
			&models.Plan{},
			&models.Subscription{},
			&models.Invoice{},
			&models.Ticket{},
			&models.Product{},
		)
	}

	return db, nil
}
