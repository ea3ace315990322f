//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured, apply the embedded schema with
// SetupTestDatabaseSchema, and isolate their writes with WithTx:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.SetupTestDatabaseSchema(t, db)
//
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    repo := postgres.NewRoleRepository(tx, nil)
//	    // ...
//	})
//
// Every transaction opened by WithTx is rolled back when the callback returns,
// so tests can share one database and run in parallel.
package testdb
