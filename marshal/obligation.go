package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var obligationKnownKeys = map[string]struct{}{
	keyID:                   {},
	keyFulfillOn:            {},
	keyAttributeAssignments: {},
}

// ObligationToTagFmt encodes o into its TagFmt map representation.
func ObligationToTagFmt(o *model.Obligation) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagObligation, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyID), Value: tagfmt.StringValue(o.ID)},
		{Key: tagfmt.StringValue(keyFulfillOn), Value: tagfmt.Int32Value(int32(o.FulfillOn))},
		{Key: tagfmt.StringValue(keyAttributeAssignments), Value: attributeAssignmentsToTagFmt(o.AttributeAssignments)},
	})
}

// ObligationFromTagFmt decodes v into an Obligation.
func ObligationFromTagFmt(v tagfmt.Value) (*model.Obligation, error) {
	if err := requireClassTag(v, classTagObligation); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagObligation, obligationKnownKeys)

	idVal, _ := getField(v, keyID)
	id, err := requiredStringFromTagFmt(idVal, keyID)
	if err != nil {
		return nil, err
	}

	fulfillOnVal, _ := getField(v, keyFulfillOn)
	fulfillOnRaw, err := requiredInt32FromTagFmt(fulfillOnVal, keyFulfillOn)
	if err != nil {
		return nil, err
	}
	fulfillOn, err := model.FulfillOnFromInt32(fulfillOnRaw)
	if err != nil {
		return nil, err
	}

	obligation, err := model.NewObligation(id, fulfillOn)
	if err != nil {
		return nil, err
	}

	if assignmentsVal, ok := getField(v, keyAttributeAssignments); ok {
		assignments, err := attributeAssignmentsFromTagFmt(assignmentsVal)
		if err != nil {
			return nil, err
		}
		for _, a := range assignments {
			obligation.AddAttributeAssignment(a)
		}
	}

	return obligation, nil
}

func obligationsToTagFmt(obligations []*model.Obligation) tagfmt.Value {
	elems := make([]tagfmt.Value, len(obligations))
	for i, o := range obligations {
		elems[i] = ObligationToTagFmt(o)
	}

	return tagfmt.ListValueWithType(classTagObligation, elems)
}

func obligationsFromTagFmt(v tagfmt.Value) ([]*model.Obligation, error) {
	if v.Kind != tagfmt.KindList {
		return nil, requireClassTag(v, classTagObligation)
	}

	out := make([]*model.Obligation, len(v.List))
	for i, elem := range v.List {
		o, err := ObligationFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}

	return out, nil
}
