// Standard errors for migration and tab navigation.
package types

import (
	"errors"
	"fmt"
)

// Migration errors.
var (
	ErrInvalidDocument  = errors.New("invalid document")
	ErrUnknownVersion   = errors.New("unknown schema version")
	ErrDuplicateVersion = errors.New("duplicate schema version")
	ErrEmptyRegistry    = errors.New("schema registry is empty")
)

// Catalog and navigation errors.
var (
	ErrEmptyCatalog   = errors.New("tab catalog is empty")
	ErrEmptyTabID     = errors.New("tab id must not be empty")
	ErrDuplicateTabID = errors.New("duplicate tab id")
	ErrPrecondition   = errors.New("precondition violated")
)

// InvalidDocumentError reports that a document failed the Verify check of
// Version right after its Update ran. The document is left partially
// migrated.
type InvalidDocumentError struct {
	Version VersionID
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("document does not verify at schema version %q", e.Version)
}

func (e *InvalidDocumentError) Unwrap() error { return ErrInvalidDocument }

// UnknownVersionError reports a version id that is not in the registry.
type UnknownVersionError struct {
	Version VersionID
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("schema version %q is not registered", e.Version)
}

func (e *UnknownVersionError) Unwrap() error { return ErrUnknownVersion }

// DuplicateVersionError reports a second registration of the same id.
type DuplicateVersionError struct {
	Version VersionID
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("schema version %q is already registered", e.Version)
}

func (e *DuplicateVersionError) Unwrap() error { return ErrDuplicateVersion }
