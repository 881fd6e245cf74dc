// Package schema migrates dashboard documents across schema revisions.
//
// A Registry holds the ordered chain of SchemaVersion values. A Migrator
// walks a document from its declared version to the latest registered
// version, running each step's Update followed by its Verify, and stops at
// the first step whose Verify fails. Migration is not transactional: a
// document that failed migration has been partially mutated and must not be
// used.
package schema
