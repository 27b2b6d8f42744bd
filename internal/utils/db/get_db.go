package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432
	}

	dbname := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")
	return Conectar(uint(port), host, dbname, secretID)
}
