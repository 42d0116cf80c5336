package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &Config{
		Host:     "db",
		Port:     "5432",
		User:     "omnipos",
		Password: "secret",
		DBName:   "omnipos_catalog",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=omnipos password=secret dbname=omnipos_catalog sslmode=disable", cfg.DSN())
}
