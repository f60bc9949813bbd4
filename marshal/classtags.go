// Package marshal bridges the object model (package model) and the
// TagFmt wire codec (package tagfmt). ToTagFmt/FromTagFmt pairs are pure
// and stateless: they hold no state between calls and never touch the
// network.
package marshal

// Class tags are opaque, byte-exact identifiers the remote PDP expects
// as a map's type header. The namespace prefix is fixed and must match
// the server; it is not configurable (spec §4.3).
const (
	classTagRequest             = "org.glite.authz.common.model.Request"
	classTagSubject             = "org.glite.authz.common.model.Subject"
	classTagResource            = "org.glite.authz.common.model.Resource"
	classTagAction              = "org.glite.authz.common.model.Action"
	classTagEnvironment         = "org.glite.authz.common.model.Environment"
	classTagAttribute           = "org.glite.authz.common.model.Attribute"
	classTagResponse            = "org.glite.authz.common.model.Response"
	classTagResult              = "org.glite.authz.common.model.Result"
	classTagStatus              = "org.glite.authz.common.model.Status"
	classTagStatusCode          = "org.glite.authz.common.model.StatusCode"
	classTagObligation          = "org.glite.authz.common.model.Obligation"
	classTagAttributeAssignment = "org.glite.authz.common.model.AttributeAssignment"
)

// Map keys, fixed string names the remote PDP expects (spec §4.3).
const (
	keySubjects             = "subjects"
	keyResources            = "resources"
	keyAction               = "action"
	keyEnvironment          = "environment"
	keyCategory             = "category"
	keyAttributes           = "attributes"
	keyContent              = "content"
	keyID                   = "id"
	keyDataType             = "dataType"
	keyIssuer               = "issuer"
	keyValues               = "values"
	keyRequest              = "request"
	keyResults              = "results"
	keyDecision             = "decision"
	keyResourceID           = "resourceId"
	keyStatus               = "status"
	keyObligations          = "obligations"
	keyMessage              = "message"
	keyCode                 = "code"
	keySubcode              = "subcode"
	keyFulfillOn            = "fulfillOn"
	keyAttributeAssignments = "attributeAssignments"
)
