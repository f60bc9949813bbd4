package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var attributeAssignmentKnownKeys = map[string]struct{}{
	keyID:     {},
	keyValues: {},
}

// AttributeAssignmentToTagFmt encodes a into its TagFmt map
// representation.
func AttributeAssignmentToTagFmt(a *model.AttributeAssignment) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagAttributeAssignment, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyID), Value: tagfmt.StringValue(a.ID)},
		{Key: tagfmt.StringValue(keyValues), Value: stringsToTagFmt(a.Values)},
	})
}

// AttributeAssignmentFromTagFmt decodes v into an AttributeAssignment.
func AttributeAssignmentFromTagFmt(v tagfmt.Value) (*model.AttributeAssignment, error) {
	if err := requireClassTag(v, classTagAttributeAssignment); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagAttributeAssignment, attributeAssignmentKnownKeys)

	idVal, _ := getField(v, keyID)
	id, err := requiredStringFromTagFmt(idVal, keyID)
	if err != nil {
		return nil, err
	}

	assignment, err := model.NewAttributeAssignment(id)
	if err != nil {
		return nil, err
	}

	if valuesVal, ok := getField(v, keyValues); ok {
		values, err := stringsFromTagFmt(valuesVal, keyValues)
		if err != nil {
			return nil, err
		}
		for _, val := range values {
			assignment.AddValue(val)
		}
	}

	return assignment, nil
}

func attributeAssignmentsToTagFmt(assignments []*model.AttributeAssignment) tagfmt.Value {
	elems := make([]tagfmt.Value, len(assignments))
	for i, a := range assignments {
		elems[i] = AttributeAssignmentToTagFmt(a)
	}

	return tagfmt.ListValueWithType(classTagAttributeAssignment, elems)
}

func attributeAssignmentsFromTagFmt(v tagfmt.Value) ([]*model.AttributeAssignment, error) {
	if v.Kind != tagfmt.KindList {
		return nil, requireClassTag(v, classTagAttributeAssignment)
	}

	out := make([]*model.AttributeAssignment, len(v.List))
	for i, elem := range v.List {
		a, err := AttributeAssignmentFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}
