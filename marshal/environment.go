package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var environmentKnownKeys = map[string]struct{}{
	keyAttributes: {},
}

// EnvironmentToTagFmt encodes e into its TagFmt map representation.
func EnvironmentToTagFmt(e *model.Environment) tagfmt.Value {
	return tagfmt.MapValueWithType(classTagEnvironment, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyAttributes), Value: attributesToTagFmt(e.Attributes)},
	})
}

// EnvironmentFromTagFmt decodes v into an Environment.
func EnvironmentFromTagFmt(v tagfmt.Value) (*model.Environment, error) {
	if err := requireClassTag(v, classTagEnvironment); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagEnvironment, environmentKnownKeys)

	e := model.NewEnvironment()

	if attrsVal, ok := getField(v, keyAttributes); ok {
		attrs, err := attributesFromTagFmt(attrsVal)
		if err != nil {
			return nil, err
		}
		for _, attr := range attrs {
			e.AddAttribute(attr)
		}
	}

	return e, nil
}
