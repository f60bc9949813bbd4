package model

import "github.com/argus-pep/argus-pep-go/errs"

// StatusCode is a URI-identified status, optionally refined by a nested
// Subcode (spec §3). The recursion mirrors the wire format's nested
// StatusCode map and is unbounded in principle, though real PDPs nest at
// most one or two levels deep.
type StatusCode struct {
	Code    string
	Subcode *StatusCode
}

// NewStatusCode creates a StatusCode with no subcode. code must be
// non-empty.
func NewStatusCode(code string) (*StatusCode, error) {
	if code == "" {
		return nil, errs.New(errs.NullPointer, "status code must not be empty")
	}

	return &StatusCode{Code: code}, nil
}

// SetSubcode sets or clears the nested subcode.
func (s *StatusCode) SetSubcode(subcode *StatusCode) {
	s.Subcode = subcode
}

// Clone returns a deep copy of s, including the full Subcode chain.
func (s *StatusCode) Clone() *StatusCode {
	if s == nil {
		return nil
	}

	return &StatusCode{Code: s.Code, Subcode: s.Subcode.Clone()}
}

// Status carries a StatusCode plus a human-readable message describing
// how a Result was reached (spec §3). Code is optional.
type Status struct {
	Code    *StatusCode
	Message string
}

// NewStatus creates an empty Status.
func NewStatus() *Status {
	return &Status{}
}

// SetCode sets or clears the optional status code.
func (s *Status) SetCode(code *StatusCode) {
	s.Code = code
}

// SetMessage sets the human-readable status message.
func (s *Status) SetMessage(message string) {
	s.Message = message
}

// Clone returns a deep copy of s.
func (s *Status) Clone() *Status {
	if s == nil {
		return nil
	}

	return &Status{Code: s.Code.Clone(), Message: s.Message}
}
