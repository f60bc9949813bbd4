package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var actionKnownKeys = map[string]struct{}{
	keyAttributes: {},
}

// ActionToTagFmt encodes a into its TagFmt map representation.
func ActionToTagFmt(a *model.Action) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagAction, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyAttributes), Value: attributesToTagFmt(a.Attributes)},
	})
}

// ActionFromTagFmt decodes v into an Action.
func ActionFromTagFmt(v tagfmt.Value) (*model.Action, error) {
	if err := requireClassTag(v, classTagAction); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagAction, actionKnownKeys)

	a := model.NewAction()

	if attrsVal, ok := getField(v, keyAttributes); ok {
		attrs, err := attributesFromTagFmt(attrsVal)
		if err != nil {
			return nil, err
		}
		for _, attr := range attrs {
			a.AddAttribute(attr)
		}
	}

	return a, nil
}
