package marshal

import (
	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var attributeKnownKeys = map[string]struct{}{
	keyID:       {},
	keyDataType: {},
	keyIssuer:   {},
	keyValues:   {},
}

// AttributeToTagFmt encodes a into its TagFmt map representation.
func AttributeToTagFmt(a *model.Attribute) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagAttribute, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyID), Value: tagfmt.StringValue(a.ID)},
		{Key: tagfmt.StringValue(keyDataType), Value: optionalStringToTagFmt(a.DataType)},
		{Key: tagfmt.StringValue(keyIssuer), Value: optionalStringToTagFmt(a.Issuer)},
		{Key: tagfmt.StringValue(keyValues), Value: stringsToTagFmt(a.Values)},
	})
}

// AttributeFromTagFmt decodes v into an Attribute.
func AttributeFromTagFmt(v tagfmt.Value) (*model.Attribute, error) {
	if err := requireClassTag(v, classTagAttribute); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagAttribute, attributeKnownKeys)

	idVal, _ := getField(v, keyID)
	id, err := requiredStringFromTagFmt(idVal, keyID)
	if err != nil {
		return nil, err
	}

	attr, err := model.NewAttribute(id)
	if err != nil {
		return nil, err
	}

	if dtVal, ok := getField(v, keyDataType); ok {
		dt, err := optionalStringFromTagFmt(dtVal, keyDataType)
		if err != nil {
			return nil, err
		}
		attr.SetDataType(dt)
	}

	if issuerVal, ok := getField(v, keyIssuer); ok {
		issuer, err := optionalStringFromTagFmt(issuerVal, keyIssuer)
		if err != nil {
			return nil, err
		}
		attr.SetIssuer(issuer)
	}

	if valuesVal, ok := getField(v, keyValues); ok {
		values, err := stringsFromTagFmt(valuesVal, keyValues)
		if err != nil {
			return nil, err
		}
		for _, val := range values {
			attr.AddValue(val)
		}
	}

	return attr, nil
}

func attributesToTagFmt(attrs []*model.Attribute) tagfmt.Value {
	elems := make([]tagfmt.Value, len(attrs))
	for i, a := range attrs {
		elems[i] = AttributeToTagFmt(a)
	}

	return tagfmt.ListValueWithType(classTagAttribute, elems)
}

func attributesFromTagFmt(v tagfmt.Value) ([]*model.Attribute, error) {
	if v.Kind != tagfmt.KindList {
		return nil, errs.Newf(errs.UnmarshalModel, "expected list of %q, got kind %d", classTagAttribute, v.Kind)
	}

	out := make([]*model.Attribute, len(v.List))
	for i, elem := range v.List {
		a, err := AttributeFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}
