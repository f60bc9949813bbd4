package model

import "github.com/argus-pep/argus-pep-go/errs"

// Obligation is a directive a PEP must enforce alongside a Result's
// Decision, conditioned on FulfillOn matching the decision actually
// rendered (spec §3).
type Obligation struct {
	ID                   string
	FulfillOn            FulfillOn
	AttributeAssignments []*AttributeAssignment
}

// NewObligation creates an Obligation with the given id and fulfillOn
// condition. id must be non-empty.
func NewObligation(id string, fulfillOn FulfillOn) (*Obligation, error) {
	if id == "" {
		return nil, errs.New(errs.NullPointer, "obligation id must not be empty")
	}

	return &Obligation{ID: id, FulfillOn: fulfillOn}, nil
}

// AddAttributeAssignment appends assignment to the ordered list.
func (o *Obligation) AddAttributeAssignment(assignment *AttributeAssignment) {
	o.AttributeAssignments = append(o.AttributeAssignments, assignment)
}

// Clone returns a deep copy of o.
func (o *Obligation) Clone() *Obligation {
	if o == nil {
		return nil
	}

	return &Obligation{
		ID:                   o.ID,
		FulfillOn:            o.FulfillOn,
		AttributeAssignments: cloneAssignments(o.AttributeAssignments),
	}
}

func cloneObligations(obligations []*Obligation) []*Obligation {
	if obligations == nil {
		return nil
	}
	out := make([]*Obligation, len(obligations))
	for i, o := range obligations {
		out[i] = o.Clone()
	}

	return out
}
