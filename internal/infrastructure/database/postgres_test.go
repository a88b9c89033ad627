package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &DBConfig{
		Host:     "db",
		Port:     5432,
		Username: "blog",
		Password: "p@ss word",
		DBName:   "blog_dev",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://blog:p%40ss%20word@db:5432/blog_dev?sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://u:p@elsewhere/x"
	assert.Equal(t, "postgres://u:p@elsewhere/x", cfg.DSN())
}

func TestUninitializedPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})

	assert.Error(t, db.Ping(context.Background()))
	assert.Error(t, db.HealthCheck(context.Background()))
	_, err := db.Stats()
	assert.Error(t, err)
	assert.NoError(t, db.Close())
}
