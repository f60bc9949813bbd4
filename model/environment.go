package model

// Environment carries ambient attributes (current time, request context)
// not tied to the Subject, Resource or Action (spec §3).
type Environment struct {
	Attributes []*Attribute
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{Attributes: []*Attribute{}}
}

// AddAttribute appends attr to the ordered attribute list.
func (e *Environment) AddAttribute(attr *Attribute) {
	e.Attributes = append(e.Attributes, attr)
}

// Clone returns a deep copy of e.
func (e *Environment) Clone() *Environment {
	if e == nil {
		return nil
	}

	return &Environment{Attributes: cloneAttributes(e.Attributes)}
}
