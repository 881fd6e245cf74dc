package schema

import "github.com/p3rf/explorer/pkg/types"

// Registry is the ordered chain of schema versions. Order is registration
// order. Registration happens at configuration time; a Registry is not safe
// for concurrent registration.
type Registry struct {
	chain []types.SchemaVersion
	index map[types.VersionID]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[types.VersionID]int)}
}

// Register appends v to the chain. A second registration of the same id
// returns a *types.DuplicateVersionError.
func (r *Registry) Register(v types.SchemaVersion) error {
	id := v.ID()
	if _, ok := r.index[id]; ok {
		return &types.DuplicateVersionError{Version: id}
	}
	r.index[id] = len(r.chain)
	r.chain = append(r.chain, v)
	return nil
}

// RegisterVersion registers a function-backed version.
func (r *Registry) RegisterVersion(id types.VersionID, verify func(types.Document) bool, update func(types.Document)) error {
	return r.Register(NewVersion(id, verify, update))
}

// Len returns the number of registered versions.
func (r *Registry) Len() int { return len(r.chain) }

// Versions returns the registered ids in chain order.
func (r *Registry) Versions() []types.VersionID {
	ids := make([]types.VersionID, len(r.chain))
	for i, v := range r.chain {
		ids[i] = v.ID()
	}
	return ids
}

// Earliest returns the first registered version id.
func (r *Registry) Earliest() (types.VersionID, error) {
	if len(r.chain) == 0 {
		return "", types.ErrEmptyRegistry
	}
	return r.chain[0].ID(), nil
}

// Latest returns the last registered version id.
func (r *Registry) Latest() (types.VersionID, error) {
	if len(r.chain) == 0 {
		return "", types.ErrEmptyRegistry
	}
	return r.chain[len(r.chain)-1].ID(), nil
}

// Index returns the chain position of id, or a *types.UnknownVersionError.
func (r *Registry) Index(id types.VersionID) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return -1, &types.UnknownVersionError{Version: id}
	}
	return i, nil
}

// Get returns the version registered under id.
func (r *Registry) Get(id types.VersionID) (types.SchemaVersion, error) {
	i, err := r.Index(id)
	if err != nil {
		return nil, err
	}
	return r.chain[i], nil
}

// after returns the versions strictly after position i.
func (r *Registry) after(i int) []types.SchemaVersion {
	return r.chain[i+1:]
}
