package entities

import "sort"

// Registry holds every package declaration found across all projects. The
// same package identifier may be declared by multiple projects, possibly at
// different versions; declarations are kept distinct per project rather than
// collapsed into a single global version.
type Registry struct {
	declarations map[string][]PackageReference
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		declarations: make(map[string][]PackageReference),
	}
}

// Add records a package declaration.
func (r *Registry) Add(ref PackageReference) {
	r.declarations[ref.ID] = append(r.declarations[ref.ID], ref)
}

// Remove drops every declaration of the given package identifier.
func (r *Registry) Remove(id string) {
	delete(r.declarations, id)
}

// Contains reports whether the identifier has at least one declaration.
func (r *Registry) Contains(id string) bool {
	_, ok := r.declarations[id]
	return ok
}

// IDs returns all declared package identifiers in deterministic order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.declarations))
	for id := range r.declarations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Declarations returns every declaration of the given identifier, ordered by
// declaring project path.
func (r *Registry) Declarations(id string) []PackageReference {
	refs := make([]PackageReference, len(r.declarations[id]))
	copy(refs, r.declarations[id])
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Project < refs[j].Project
	})
	return refs
}

// DeclaringProjects returns the paths of every project declaring the given
// identifier, in deterministic order.
func (r *Registry) DeclaringProjects(id string) []string {
	seen := make(map[string]bool)
	var projects []string
	for _, ref := range r.declarations[id] {
		if !seen[ref.Project] {
			seen[ref.Project] = true
			projects = append(projects, ref.Project)
		}
	}
	sort.Strings(projects)
	return projects
}

// DevOnly reports whether every declaration of the identifier carries the
// development-only marker.
func (r *Registry) DevOnly(id string) bool {
	refs := r.declarations[id]
	if len(refs) == 0 {
		return false
	}
	for _, ref := range refs {
		if !ref.DevOnly {
			return false
		}
	}
	return true
}

// Len returns the number of distinct declared identifiers.
func (r *Registry) Len() int {
	return len(r.declarations)
}
