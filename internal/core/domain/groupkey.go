package domain

import "fmt"

// GroupKey selects the annotation field used by the grouped projection.
type GroupKey string

// The fields a grouped projection may key on.
const (
	GroupByTag     GroupKey = "tag"
	GroupByLayer   GroupKey = "layer"
	GroupBySection GroupKey = "section"
)

// ParseGroupKey validates a user-supplied group-by value.
func ParseGroupKey(s string) (GroupKey, error) {
	switch GroupKey(s) {
	case GroupByTag, GroupByLayer, GroupBySection:
		return GroupKey(s), nil
	}
	return "", fmt.Errorf("%w: %q (want tag, layer or section)", ErrUnknownGroupKey, s)
}

// ValueOf extracts the keyed field from an annotation. The empty string
// is a legitimate key: annotations without a layer group under "".
func (k GroupKey) ValueOf(a Annotation) string {
	switch k {
	case GroupByLayer:
		return a.Layer
	case GroupBySection:
		return a.Section
	default:
		return a.Tag
	}
}
