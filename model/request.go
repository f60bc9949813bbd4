package model

import "github.com/argus-pep/argus-pep-go/errs"

// Request is the root of the authorization decision request tree
// (spec §3). Action and Environment are optional; Subjects and Resources
// preserve insertion order. A Request is valid for transmission with any
// or all of these empty — Validate only rejects a nil Request.
type Request struct {
	Subjects    []*Subject
	Resources   []*Resource
	Action      *Action
	Environment *Environment
}

// NewRequest creates an empty Request ready to be populated with
// AddSubject / AddResource / SetAction / SetEnvironment.
func NewRequest() *Request {
	return &Request{
		Subjects:  []*Subject{},
		Resources: []*Resource{},
	}
}

// AddSubject appends subject to the ordered subject list.
func (r *Request) AddSubject(subject *Subject) {
	r.Subjects = append(r.Subjects, subject)
}

// AddResource appends resource to the ordered resource list.
func (r *Request) AddResource(resource *Resource) {
	r.Resources = append(r.Resources, resource)
}

// SetAction sets or clears the optional action.
func (r *Request) SetAction(action *Action) {
	r.Action = action
}

// SetEnvironment sets or clears the optional environment.
func (r *Request) SetEnvironment(env *Environment) {
	r.Environment = env
}

// Validate reports whether r is structurally valid for transmission. A
// Request with no subjects, resources, action, or environment is valid —
// those collections simply encode as empty, not absent — so the only
// failure mode is a nil Request itself.
func (r *Request) Validate() error {
	if r == nil {
		return errs.New(errs.AuthzRequest, "request is nil")
	}

	return nil
}

// Clone returns a deep copy of r.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}

	clone := &Request{
		Action:      r.Action.Clone(),
		Environment: r.Environment.Clone(),
	}
	if r.Subjects != nil {
		clone.Subjects = make([]*Subject, len(r.Subjects))
		for i, s := range r.Subjects {
			clone.Subjects[i] = s.Clone()
		}
	}
	if r.Resources != nil {
		clone.Resources = make([]*Resource, len(r.Resources))
		for i, res := range r.Resources {
			clone.Resources[i] = res.Clone()
		}
	}

	return clone
}
