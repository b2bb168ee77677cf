package catalog

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockStore wires a sqlmock connection behind GORM's postgres dialector so
// store-touching components can be exercised without a database.
func newMockStore(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// seqUUID builds UUIDv7-shaped ids whose lexical order follows n, so
// descending-id assertions are readable.
func seqUUID(t *testing.T, n int) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(fmt.Sprintf("00000000-0000-7000-8000-%012d", n))
	require.NoError(t, err)
	return id
}
