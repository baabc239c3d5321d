package postgres

import (
	"testing"

	"jobboard/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_QuotesPassword(t *testing.T) {
	cfg := config.DatabaseConfig{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "jobboard",
		DBPassword: "s3cret pa'ss",
		DBName:     "jobboard",
		DBSSLMode:  "disable",
	}

	dsn := DSN(cfg)
	assert.Contains(t, dsn, `password='s3cret pa\'ss'`)

	pcfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "s3cret pa'ss", pcfg.ConnConfig.Password)
	assert.Equal(t, "jobboard", pcfg.ConnConfig.Database)
}

func TestDSN_EmptyPassword(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{DBHost: "db", DBPort: "5432", DBUser: "u", DBName: "n", DBSSLMode: "disable"})
	pcfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "", pcfg.ConnConfig.Password)
	assert.Equal(t, "db", pcfg.ConnConfig.Host)
}
