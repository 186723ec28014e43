package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contractor-site-api/internal/database"
)

func TestNewDocumentStoreSelectsBackend(t *testing.T) {
	db := setupDocumentTestDB(t)

	store, err := NewDocumentStore(&database.Connection{Driver: database.DriverSQLite, Name: "site", SQL: db})
	require.NoError(t, err)
	require.IsType(t, &sqlDocumentStore{}, store)
	require.Equal(t, "site", store.Name())
}

func TestNewDocumentStoreRejectsUnknownDriver(t *testing.T) {
	_, err := NewDocumentStore(&database.Connection{Driver: "cassandra"})
	require.ErrorIs(t, err, ErrUnsupportedDriver)

	_, err = NewDocumentStore(nil)
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}
