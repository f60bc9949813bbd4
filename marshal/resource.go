package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var resourceKnownKeys = map[string]struct{}{
	keyContent:    {},
	keyAttributes: {},
}

// ResourceToTagFmt encodes r into its TagFmt map representation.
func ResourceToTagFmt(r *model.Resource) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagResource, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyContent), Value: optionalStringToTagFmt(r.Content)},
		{Key: tagfmt.StringValue(keyAttributes), Value: attributesToTagFmt(r.Attributes)},
	})
}

// ResourceFromTagFmt decodes v into a Resource.
func ResourceFromTagFmt(v tagfmt.Value) (*model.Resource, error) {
	if err := requireClassTag(v, classTagResource); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagResource, resourceKnownKeys)

	r := model.NewResource()

	if contentVal, ok := getField(v, keyContent); ok {
		content, err := optionalStringFromTagFmt(contentVal, keyContent)
		if err != nil {
			return nil, err
		}
		r.SetContent(content)
	}

	if attrsVal, ok := getField(v, keyAttributes); ok {
		attrs, err := attributesFromTagFmt(attrsVal)
		if err != nil {
			return nil, err
		}
		for _, a := range attrs {
			r.AddAttribute(a)
		}
	}

	return r, nil
}

func resourcesToTagFmt(resources []*model.Resource) tagfmt.Value {
	elems := make([]tagfmt.Value, len(resources))
	for i, r := range resources {
		elems[i] = ResourceToTagFmt(r)
	}

	return tagfmt.ListValueWithType(classTagResource, elems)
}

func resourcesFromTagFmt(v tagfmt.Value) ([]*model.Resource, error) {
	if v.Kind != tagfmt.KindList {
		return nil, requireClassTag(v, classTagResource)
	}

	out := make([]*model.Resource, len(v.List))
	for i, elem := range v.List {
		r, err := ResourceFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}
