// Schema version identifiers and the per-version contract.
package types

import "strings"

// VersionID identifies one dashboard schema revision.
type VersionID string

// Known dashboard schema versions, oldest first.
const (
	// VersionV1 is the initial dashboard schema: widgets with datasource and
	// chart top-level elements.
	VersionV1 VersionID = "1"
)

// KnownVersions lists every declared VersionID in chain order.
func KnownVersions() []VersionID {
	return []VersionID{VersionV1}
}

// ParseVersionID normalizes a raw version string. It does not check that the
// id is registered; registries reject unknown ids with ErrUnknownVersion.
func ParseVersionID(s string) VersionID {
	return VersionID(strings.TrimSpace(s))
}

// String implements fmt.Stringer.
func (v VersionID) String() string {
	return string(v)
}

// SchemaVersion is a single revision's contract.
type SchemaVersion interface {
	// ID returns the version identifier.
	ID() VersionID

	// Verify reports whether doc already satisfies this version's shape.
	// It must not mutate doc.
	Verify(doc Document) bool

	// Update transforms doc in place from the previous version's shape
	// toward this version's shape.
	Update(doc Document)
}
