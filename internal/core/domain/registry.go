package domain

// Registry maps upper-cased tag names to their taxonomy family.
// A Registry is built once per invocation and read-only thereafter.
type Registry map[string]Family

// Lookup returns the family for a tag, or FamilyUnknown when the tag is
// absent. Lookup is total: it never fails.
func (r Registry) Lookup(tag string) Family {
	if fam, ok := r[tag]; ok {
		return fam
	}
	return FamilyUnknown
}

// Clone returns an independent copy of the registry.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for tag, fam := range r {
		out[tag] = fam
	}
	return out
}
