package model

import "github.com/argus-pep/argus-pep-go/errs"

// Attribute is a named, typed value (or ordered list of values) attached
// to a Subject, Resource, Action, or Environment (spec §3).
//
// ID is mandatory and non-empty. DataType and Issuer are optional; a nil
// pointer means absent, distinct from an empty string. Values preserves
// insertion order and may be empty.
type Attribute struct {
	ID       string
	DataType *string
	Issuer   *string
	Values   []string
}

// NewAttribute creates an Attribute with the given id. id must be
// non-empty; violating this is a caller contract error (spec §4.1).
func NewAttribute(id string) (*Attribute, error) {
	if id == "" {
		return nil, errs.New(errs.NullPointer, "attribute id must not be empty")
	}

	return &Attribute{ID: id}, nil
}

// SetID replaces the attribute's id. id must be non-empty.
func (a *Attribute) SetID(id string) error {
	if id == "" {
		return errs.New(errs.NullPointer, "attribute id must not be empty")
	}
	a.ID = id

	return nil
}

// SetDataType sets or clears the optional datatype. Passing nil clears it.
func (a *Attribute) SetDataType(dataType *string) {
	a.DataType = copyStringPtr(dataType)
}

// SetIssuer sets or clears the optional issuer. Passing nil clears it.
func (a *Attribute) SetIssuer(issuer *string) {
	a.Issuer = copyStringPtr(issuer)
}

// AddValue appends value to the ordered value list. Values are copied on
// insertion so the caller's string has an independent lifetime (spec §3),
// which Go's value-semantics strings already guarantee.
func (a *Attribute) AddValue(value string) {
	a.Values = append(a.Values, value)
}

// Clone returns a deep copy of a with an independent Values slice and
// DataType/Issuer pointers.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}

	clone := &Attribute{
		ID:       a.ID,
		DataType: copyStringPtr(a.DataType),
		Issuer:   copyStringPtr(a.Issuer),
	}
	if a.Values != nil {
		clone.Values = append([]string(nil), a.Values...)
	}

	return clone
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

func cloneAttributes(attrs []*Attribute) []*Attribute {
	if attrs == nil {
		return nil
	}
	out := make([]*Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = a.Clone()
	}

	return out
}
