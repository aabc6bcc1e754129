package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func TestDSN(t *testing.T) {
	dsn := DSN(models.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		Username: "transit",
		Password: "p@ss",
		Database: "tickets",
		SSLMode:  "disable",
	})
	assert.Equal(t, "postgres://transit:p%40ss@db:5432/tickets?sslmode=disable", dsn)
}

func TestPostgresClient_PingAndClose(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFrom(sqlx.NewDb(mockDB, "pgx"))
	mock.ExpectPing()
	mock.ExpectClose()

	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetDB())
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresClient_UnknownDriver(t *testing.T) {
	client, err := NewPostgresClient(context.Background(), models.DatabaseConfig{Driver: "nope"})
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to postgres")
}
