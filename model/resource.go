package model

// Resource is the entity being acted upon (spec §3). Content is an
// optional opaque blob (e.g. a base64-encoded document) carried alongside
// the ordinary attribute list.
type Resource struct {
	Content    *string
	Attributes []*Attribute
}

// NewResource creates an empty Resource.
func NewResource() *Resource {
	return &Resource{Attributes: []*Attribute{}}
}

// SetContent sets or clears the optional content blob.
func (r *Resource) SetContent(content *string) {
	r.Content = copyStringPtr(content)
}

// AddAttribute appends attr to the ordered attribute list.
func (r *Resource) AddAttribute(attr *Attribute) {
	r.Attributes = append(r.Attributes, attr)
}

// Clone returns a deep copy of r.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}

	return &Resource{
		Content:    copyStringPtr(r.Content),
		Attributes: cloneAttributes(r.Attributes),
	}
}
