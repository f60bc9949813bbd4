package marshal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

func buildMinimalRequest(t *testing.T, subjectValue string) *model.Request {
	t.Helper()

	req := model.NewRequest()

	subject := model.NewSubject()
	attr, err := model.NewAttribute("urn:oasis:names:tc:xacml:1.0:subject:subject-id")
	require.NoError(t, err)
	dt := "urn:oasis:names:tc:xacml:1.0:data-type:x500Name"
	attr.SetDataType(&dt)
	attr.AddValue(subjectValue)
	subject.AddAttribute(attr)
	req.AddSubject(subject)

	resource := model.NewResource()
	resAttr, err := model.NewAttribute("resource-id")
	require.NoError(t, err)
	resAttr.AddValue("res1")
	resource.AddAttribute(resAttr)
	req.AddResource(resource)

	action := model.NewAction()
	actionAttr, err := model.NewAttribute("action-id")
	require.NoError(t, err)
	actionAttr.AddValue("read")
	action.AddAttribute(actionAttr)
	req.SetAction(action)

	return req
}

func TestRequest_RoundTrip(t *testing.T) {
	req := buildMinimalRequest(t, "CN=Alice,O=Example,C=CH")

	encoded := RequestToTagFmt(req)
	decoded, err := RequestFromTagFmt(encoded)
	require.NoError(t, err)

	require.Len(t, decoded.Subjects, 1)
	require.Equal(t, req.Subjects[0].Attributes[0].Values[0], decoded.Subjects[0].Attributes[0].Values[0])
	require.Len(t, decoded.Resources, 1)
	require.Equal(t, "res1", decoded.Resources[0].Attributes[0].Values[0])
	require.NotNil(t, decoded.Action)
	require.Nil(t, decoded.Environment, "absent environment must decode to nil, not a zero-value Environment")
}

func TestRequest_ClassTagMismatch(t *testing.T) {
	bad := tagfmt.MapValueWithType("not.the.right.tag", nil)
	_, err := RequestFromTagFmt(bad)
	require.Error(t, err)
}

func TestAttribute_UnknownKeyTolerance(t *testing.T) {
	attr, err := model.NewAttribute("id")
	require.NoError(t, err)
	attr.AddValue("v1")

	encoded := AttributeToTagFmt(attr)
	encoded.Map = append(encoded.Map, tagfmt.MapEntry{
		Key:   tagfmt.StringValue("unexpectedField"),
		Value: tagfmt.StringValue("ignored"),
	})

	decoded, err := AttributeFromTagFmt(encoded)
	require.NoError(t, err)
	require.Equal(t, attr.ID, decoded.ID)
	require.Equal(t, attr.Values, decoded.Values)
}

func TestAttribute_NullForAbsent(t *testing.T) {
	attr, err := model.NewAttribute("id")
	require.NoError(t, err)

	encoded := AttributeToTagFmt(attr)
	dataTypeVal, ok := encoded.Get(keyDataType)
	require.True(t, ok)
	require.True(t, dataTypeVal.IsNull())

	decoded, err := AttributeFromTagFmt(encoded)
	require.NoError(t, err)
	require.Nil(t, decoded.DataType)
}

func TestObligation_S3_PosixUidGid(t *testing.T) {
	obligation, err := model.NewObligation("obligation:local-environment-map/posix", model.FulfillOnPermit)
	require.NoError(t, err)

	uidAssignment, err := model.NewAttributeAssignment("posix-uid")
	require.NoError(t, err)
	uidAssignment.AddValue("1001")
	obligation.AddAttributeAssignment(uidAssignment)

	gidAssignment, err := model.NewAttributeAssignment("posix-gid")
	require.NoError(t, err)
	gidAssignment.AddValue("2001")
	obligation.AddAttributeAssignment(gidAssignment)

	encoded := ObligationToTagFmt(obligation)
	decoded, err := ObligationFromTagFmt(encoded)
	require.NoError(t, err)

	require.Equal(t, model.FulfillOnPermit, decoded.FulfillOn)
	require.Len(t, decoded.AttributeAssignments, 2)
	require.Equal(t, "posix-uid", decoded.AttributeAssignments[0].ID)
	require.Equal(t, "1001", decoded.AttributeAssignments[0].Values[0])
	require.Equal(t, "posix-gid", decoded.AttributeAssignments[1].ID)
	require.Equal(t, "2001", decoded.AttributeAssignments[1].Values[0])
}

func TestResponse_RoundTrip_WithObligation(t *testing.T) {
	resp := model.NewResponse()
	result := model.NewResult(model.Permit)
	result.SetResourceID("res1")

	code, err := model.NewStatusCode("urn:oasis:names:tc:xacml:1.0:status:ok")
	require.NoError(t, err)
	status := model.NewStatus()
	status.SetCode(code)
	result.SetStatus(status)

	obligation, err := model.NewObligation("obligation-1", model.FulfillOnPermit)
	require.NoError(t, err)
	result.AddObligation(obligation)

	resp.AddResult(result)

	encoded := ResponseToTagFmt(resp)
	decoded, err := ResponseFromTagFmt(encoded)
	require.NoError(t, err)

	require.Len(t, decoded.Results, 1)
	require.Equal(t, model.Permit, decoded.Results[0].Decision)
	require.Equal(t, "res1", decoded.Results[0].ResourceID)
	require.Equal(t, "urn:oasis:names:tc:xacml:1.0:status:ok", decoded.Results[0].Status.Code.Code)
	require.Len(t, decoded.Results[0].Obligations, 1)
	require.Nil(t, decoded.Request, "response with no echoed request must decode Request as nil")
}

func TestResult_InvalidDecisionValue(t *testing.T) {
	bad := tagfmt.MapValueWithType(classTagResult, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyDecision), Value: tagfmt.Int32Value(42)},
		{Key: tagfmt.StringValue(keyResourceID), Value: tagfmt.StringValue("res1")},
		{Key: tagfmt.StringValue(keyStatus), Value: tagfmt.Null()},
		{Key: tagfmt.StringValue(keyObligations), Value: tagfmt.ListValue(nil)},
	})

	_, err := ResultFromTagFmt(bad)
	require.Error(t, err)
}

func TestStatusCode_NestedSubcodeRoundTrip(t *testing.T) {
	var build func(depth int) *model.StatusCode
	build = func(depth int) *model.StatusCode {
		code, err := model.NewStatusCode("urn:code")
		require.NoError(t, err)
		if depth > 0 {
			code.SetSubcode(build(depth - 1))
		}

		return code
	}

	for depth := 0; depth <= 16; depth++ {
		sc := build(depth)
		encoded := StatusCodeToTagFmt(sc)
		decoded, err := StatusCodeFromTagFmt(encoded)
		require.NoError(t, err)

		gotDepth := 0
		cur := decoded
		for cur.Subcode != nil {
			gotDepth++
			cur = cur.Subcode
		}
		require.Equal(t, depth, gotDepth)
	}
}
