package registry

import "github.com/Illian-Amerond/tagledger/internal/core/domain"

// builtin is the default taxonomy. It is package-private and never
// mutated; Builtin returns callers a copy so the constant table cannot
// be modified through a resolve.
var builtin = domain.Registry{
	// Structural & Framework
	"GLYPH":   domain.FamilyStructural,
	"NODE":    domain.FamilyStructural,
	"ARC":     domain.FamilyStructural,
	"LATTICE": domain.FamilyStructural,
	"CORE":    domain.FamilyStructural,
	"GATE":    domain.FamilyStructural,
	"BOND":    domain.FamilyStructural,
	"SEED":    domain.FamilyStructural,
	"SPINE":   domain.FamilyStructural,
	"KEY":     domain.FamilyStructural,

	// Process & Development
	"DRIFT":   domain.FamilyProcess,
	"ANCHOR":  domain.FamilyProcess,
	"FUSE":    domain.FamilyProcess,
	"REFRACT": domain.FamilyProcess,
	"SPIRAL":  domain.FamilyProcess,
	"TEMPER":  domain.FamilyProcess,
	"CAST":    domain.FamilyProcess,
	"WARD":    domain.FamilyProcess,
	"TRACE":   domain.FamilyProcess,
	"FLOW":    domain.FamilyProcess,
	"BIND":    domain.FamilyProcess,

	// Symbolic & Philosophical
	"LIGHT":   domain.FamilySymbolic,
	"SHDW":    domain.FamilySymbolic,
	"MOTHER":  domain.FamilySymbolic,
	"FATHER":  domain.FamilySymbolic,
	"AIR":     domain.FamilySymbolic,
	"FIRE":    domain.FamilySymbolic,
	"WATER":   domain.FamilySymbolic,
	"EARTH":   domain.FamilySymbolic,
	"GNOME":   domain.FamilySymbolic,
	"OPAL":    domain.FamilySymbolic,
	"COMPASS": domain.FamilySymbolic,
	"LAMP":    domain.FamilySymbolic,
	"FORGE":   domain.FamilySymbolic,

	// Meta & Operational
	"META":    domain.FamilyMeta,
	"ENGRAM":  domain.FamilyMeta,
	"LEDGER":  domain.FamilyMeta,
	"TEST":    domain.FamilyMeta,
	"PROOF":   domain.FamilyMeta,
	"CIPHER":  domain.FamilyMeta,
	"MAP":     domain.FamilyMeta,
	"GLOSS":   domain.FamilyMeta,
	"ARCHIVE": domain.FamilyMeta,
	"ITER":    domain.FamilyMeta,

	// Seeded Epiphany Matrix (Appendix A)
	"ARC_CLIMAX":   domain.FamilyEpiphany,
	"GATE_OPEN":    domain.FamilyEpiphany,
	"GATE_CLOSE":   domain.FamilyEpiphany,
	"CORE_REVEAL":  domain.FamilyEpiphany,
	"SPIRAL_TURN":  domain.FamilyEpiphany,
	"FORGE_STRIKE": domain.FamilyEpiphany,
}

// Builtin returns a copy of the built-in taxonomy.
func Builtin() domain.Registry {
	return builtin.Clone()
}

// Resolve composes a base registry with an overlay. The result starts
// from base; every overlay entry is applied on top, so overlay entries
// strictly win for tags present in both. Neither input is mutated.
func Resolve(base, overlay domain.Registry) domain.Registry {
	out := base.Clone()
	for tag, fam := range overlay {
		out[tag] = fam
	}
	return out
}
