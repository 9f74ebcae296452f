package domain

// Family is the taxonomy category a tag name classifies into.
type Family string

// The five taxonomy families, plus the Unknown marker attached to tags
// absent from every registry source.
const (
	FamilyStructural Family = "Structural"
	FamilyProcess    Family = "Process"
	FamilySymbolic   Family = "Symbolic"
	FamilyMeta       Family = "Meta"
	FamilyEpiphany   Family = "Epiphany"
	FamilyUnknown    Family = "Unknown"
)

// Families lists the known taxonomy families in their canonical order.
// FamilyUnknown is deliberately excluded: it marks absence, not membership.
func Families() []Family {
	return []Family{
		FamilyStructural,
		FamilyProcess,
		FamilySymbolic,
		FamilyMeta,
		FamilyEpiphany,
	}
}

// Known reports whether f is one of the five taxonomy families.
func (f Family) Known() bool {
	switch f {
	case FamilyStructural, FamilyProcess, FamilySymbolic, FamilyMeta, FamilyEpiphany:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}
