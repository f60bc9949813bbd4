package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponse_AddResult_PreservesOrder(t *testing.T) {
	resp := NewResponse()
	resp.AddResult(NewResult(Permit))
	resp.AddResult(NewResult(Deny))
	resp.AddResult(NewResult(NotApplicable))

	require.Len(t, resp.Results, 3)
	require.Equal(t, Permit, resp.Results[0].Decision)
	require.Equal(t, Deny, resp.Results[1].Decision)
	require.Equal(t, NotApplicable, resp.Results[2].Decision)
}

func TestResponse_Clone_DeepCopiesNestedObligations(t *testing.T) {
	resp := NewResponse()
	result := NewResult(Permit)
	result.SetResourceID("res-1")

	obligation, err := NewObligation("obligation-1", FulfillOnPermit)
	require.NoError(t, err)
	assignment, err := NewAttributeAssignment("assignment-1")
	require.NoError(t, err)
	assignment.AddValue("value-1")
	obligation.AddAttributeAssignment(assignment)
	result.AddObligation(obligation)

	code, err := NewStatusCode("urn:oasis:names:tc:xacml:1.0:status:ok")
	require.NoError(t, err)
	subcode, err := NewStatusCode("urn:oasis:names:tc:xacml:1.0:status:missing-attribute")
	require.NoError(t, err)
	code.SetSubcode(subcode)
	status := NewStatus()
	status.SetCode(code)
	status.SetMessage("missing subject attribute")
	result.SetStatus(status)

	resp.AddResult(result)

	clone := resp.Clone()
	require.Equal(t, "res-1", clone.Results[0].ResourceID)
	require.Equal(t, "value-1", clone.Results[0].Obligations[0].AttributeAssignments[0].Values[0])
	require.Equal(t, subcode.Code, clone.Results[0].Status.Code.Subcode.Code)

	clone.Results[0].Obligations[0].AttributeAssignments[0].AddValue("value-2")
	require.Len(t, resp.Results[0].Obligations[0].AttributeAssignments[0].Values, 1)

	clone.Results[0].Status.Code.Subcode.Code = "changed"
	require.Equal(t, "urn:oasis:names:tc:xacml:1.0:status:missing-attribute", resp.Results[0].Status.Code.Subcode.Code)
}

func TestResponse_Clone_Nil(t *testing.T) {
	var r *Response
	require.Nil(t, r.Clone())
}
