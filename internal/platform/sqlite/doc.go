// Package sqlite provides SQLite-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of database connections, query execution, and data
// mapping between domain entities and database records. The intended
// deployment uses an in-memory database, so the schema is created fresh on
// every startup and no migration tooling is involved.
package sqlite
