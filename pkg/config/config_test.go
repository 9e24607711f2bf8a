package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_CodificaPasswordConCaracteresEspeciales(t *testing.T) {
	c := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "shopping_list",
		SSLMode:  "disable",
	}
	dsn := c.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

// DATABASE_URL, si está definido, manda sobre los campos sueltos.
func TestConnectionString_DatabaseURLTienePrioridad(t *testing.T) {
	c := DBConfig{
		DatabaseURL: "postgresql://user:pass@db:5432/otra?sslmode=require",
		Host:        "localhost",
		Port:        5432,
	}
	assert.Equal(t, c.DatabaseURL, c.ConnectionString())

	c.DatabaseURL = ""
	assert.Equal(t, c.DSN(), c.ConnectionString())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "shopping_list", cfg.DB.DBName)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres", cfg.Storage.Driver)
}

func TestLoad_DriverDeAlmacenamiento(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)

	t.Setenv("STORAGE_DRIVER", "redis")
	_, err = Load()
	assert.Error(t, err, "un driver desconocido debe rechazarse al arrancar")
}
