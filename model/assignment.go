package model

import "github.com/argus-pep/argus-pep-go/errs"

// AttributeAssignment binds a value to an attribute id inside an
// Obligation (spec §3). Unlike Attribute, it has no DataType/Issuer —
// only id and an ordered value list.
type AttributeAssignment struct {
	ID     string
	Values []string
}

// NewAttributeAssignment creates an AttributeAssignment with the given
// id. id must be non-empty.
func NewAttributeAssignment(id string) (*AttributeAssignment, error) {
	if id == "" {
		return nil, errs.New(errs.NullPointer, "attribute assignment id must not be empty")
	}

	return &AttributeAssignment{ID: id}, nil
}

// AddValue appends value to the ordered value list.
func (a *AttributeAssignment) AddValue(value string) {
	a.Values = append(a.Values, value)
}

// Clone returns a deep copy of a.
func (a *AttributeAssignment) Clone() *AttributeAssignment {
	if a == nil {
		return nil
	}

	clone := &AttributeAssignment{ID: a.ID}
	if a.Values != nil {
		clone.Values = append([]string(nil), a.Values...)
	}

	return clone
}

func cloneAssignments(assignments []*AttributeAssignment) []*AttributeAssignment {
	if assignments == nil {
		return nil
	}
	out := make([]*AttributeAssignment, len(assignments))
	for i, a := range assignments {
		out[i] = a.Clone()
	}

	return out
}
