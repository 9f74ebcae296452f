// Package render projects classified annotations into their output
// forms: the CHANGELOG-style markdown narrative, raw and grouped JSON,
// and the optional terminal styling applied on top of the narrative.
//
// Projections are read-only views: none of them modify the record list
// they are given.
package render
