package schema

import "github.com/p3rf/explorer/pkg/types"

// dashboardV1 is the initial release of the dashboard explorer. Documents
// only need a type field; there is nothing older to update from.
var dashboardV1 = NewVersion(types.VersionV1,
	func(doc types.Document) bool { return doc.Has(types.FieldType) },
	nil,
)

// DefaultRegistry returns a registry holding every known dashboard schema
// version in chain order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, v := range []types.SchemaVersion{dashboardV1} {
		if err := r.Register(v); err != nil {
			// The built-in chain is static; a failure here is a programming error.
			panic(err)
		}
	}
	return r
}
