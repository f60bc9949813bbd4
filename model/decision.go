package model

import "github.com/argus-pep/argus-pep-go/errs"

// Decision is the outcome of evaluating a Request against policy. The
// numeric values are part of the wire format (spec §3) and must not be
// reordered.
type Decision int32

const (
	Deny          Decision = 0
	Permit        Decision = 1
	Indeterminate Decision = 2
	NotApplicable Decision = 3
)

func (d Decision) String() string {
	switch d {
	case Deny:
		return "Deny"
	case Permit:
		return "Permit"
	case Indeterminate:
		return "Indeterminate"
	case NotApplicable:
		return "NotApplicable"
	default:
		return "Unknown"
	}
}

// DecisionFromInt32 validates a wire integer against the known Decision
// values. Any other value is a protocol error (spec §8, property 9).
func DecisionFromInt32(v int32) (Decision, error) {
	switch Decision(v) {
	case Deny, Permit, Indeterminate, NotApplicable:
		return Decision(v), nil
	default:
		return 0, errs.Newf(errs.UnmarshalModel, "invalid decision value: %d", v)
	}
}

// FulfillOn shares Decision's numeric space (spec §3) but only Deny and
// Permit are valid values.
type FulfillOn int32

const (
	FulfillOnDeny   FulfillOn = FulfillOn(Deny)
	FulfillOnPermit FulfillOn = FulfillOn(Permit)
)

func (f FulfillOn) String() string {
	switch f {
	case FulfillOnDeny:
		return "Deny"
	case FulfillOnPermit:
		return "Permit"
	default:
		return "Unknown"
	}
}

// FulfillOnFromInt32 validates a wire integer against the two legal
// FulfillOn values.
func FulfillOnFromInt32(v int32) (FulfillOn, error) {
	switch FulfillOn(v) {
	case FulfillOnDeny, FulfillOnPermit:
		return FulfillOn(v), nil
	default:
		return 0, errs.Newf(errs.UnmarshalModel, "invalid fulfillOn value: %d", v)
	}
}
