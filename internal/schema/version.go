package schema

import "github.com/p3rf/explorer/pkg/types"

// Version is a SchemaVersion backed by plain functions.
type Version struct {
	id     types.VersionID
	verify func(types.Document) bool
	update func(types.Document)
}

// NewVersion returns a Version. A nil update is a legal no-op; a nil verify
// accepts every document.
func NewVersion(id types.VersionID, verify func(types.Document) bool, update func(types.Document)) *Version {
	return &Version{id: id, verify: verify, update: update}
}

// ID implements types.SchemaVersion.
func (v *Version) ID() types.VersionID { return v.id }

// Verify implements types.SchemaVersion.
func (v *Version) Verify(doc types.Document) bool {
	if v.verify == nil {
		return true
	}
	return v.verify(doc)
}

// Update implements types.SchemaVersion.
func (v *Version) Update(doc types.Document) {
	if v.update != nil {
		v.update(doc)
	}
}
