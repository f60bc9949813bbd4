package model

// Action is the operation a Subject wants to perform on a Resource
// (spec §3). It carries only an ordered attribute list.
type Action struct {
	Attributes []*Attribute
}

// NewAction creates an empty Action.
func NewAction() *Action {
	return &Action{Attributes: []*Attribute{}}
}

// AddAttribute appends attr to the ordered attribute list.
func (a *Action) AddAttribute(attr *Attribute) {
	a.Attributes = append(a.Attributes, attr)
}

// Clone returns a deep copy of a.
func (a *Action) Clone() *Action {
	if a == nil {
		return nil
	}

	return &Action{Attributes: cloneAttributes(a.Attributes)}
}
