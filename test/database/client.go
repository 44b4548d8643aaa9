// Package database provides a test client wrapper for integration
// tests against a real PostgreSQL instance.
package database

import (
	"testing"

	"github.com/frankbria/codeframe/pkg/database"
	"github.com/frankbria/codeframe/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
