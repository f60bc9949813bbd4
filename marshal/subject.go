package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var subjectKnownKeys = map[string]struct{}{
	keyCategory:   {},
	keyAttributes: {},
}

// SubjectToTagFmt encodes s into its TagFmt map representation.
func SubjectToTagFmt(s *model.Subject) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagSubject, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyCategory), Value: optionalStringToTagFmt(s.Category)},
		{Key: tagfmt.StringValue(keyAttributes), Value: attributesToTagFmt(s.Attributes)},
	})
}

// SubjectFromTagFmt decodes v into a Subject.
func SubjectFromTagFmt(v tagfmt.Value) (*model.Subject, error) {
	if err := requireClassTag(v, classTagSubject); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagSubject, subjectKnownKeys)

	s := model.NewSubject()

	if catVal, ok := getField(v, keyCategory); ok {
		cat, err := optionalStringFromTagFmt(catVal, keyCategory)
		if err != nil {
			return nil, err
		}
		s.SetCategory(cat)
	}

	if attrsVal, ok := getField(v, keyAttributes); ok {
		attrs, err := attributesFromTagFmt(attrsVal)
		if err != nil {
			return nil, err
		}
		for _, a := range attrs {
			s.AddAttribute(a)
		}
	}

	return s, nil
}

func subjectsToTagFmt(subjects []*model.Subject) tagfmt.Value {
	elems := make([]tagfmt.Value, len(subjects))
	for i, s := range subjects {
		elems[i] = SubjectToTagFmt(s)
	}

	return tagfmt.ListValueWithType(classTagSubject, elems)
}

func subjectsFromTagFmt(v tagfmt.Value) ([]*model.Subject, error) {
	if v.Kind != tagfmt.KindList {
		return nil, requireClassTag(v, classTagSubject)
	}

	out := make([]*model.Subject, len(v.List))
	for i, elem := range v.List {
		s, err := SubjectFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}
