package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var requestKnownKeys = map[string]struct{}{
	keySubjects:    {},
	keyResources:   {},
	keyAction:      {},
	keyEnvironment: {},
}

// RequestToTagFmt encodes r into its TagFmt map representation. Action
// and Environment encode as null when absent; Subjects/Resources always
// encode as a list, even empty (spec §4.3).
func RequestToTagFmt(r *model.Request) tagfmt.Value {
	actionVal := tagfmt.Null()
	if r.Action != nil {
		actionVal = ActionToTagFmt(r.Action)
	}

	envVal := tagfmt.Null()
	if r.Environment != nil {
		envVal = EnvironmentToTagFmt(r.Environment)
	}

	return tagfmt.MapValueWithType(classTagRequest, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keySubjects), Value: subjectsToTagFmt(r.Subjects)},
		{Key: tagfmt.StringValue(keyResources), Value: resourcesToTagFmt(r.Resources)},
		{Key: tagfmt.StringValue(keyAction), Value: actionVal},
		{Key: tagfmt.StringValue(keyEnvironment), Value: envVal},
	})
}

// RequestFromTagFmt decodes v into a Request.
func RequestFromTagFmt(v tagfmt.Value) (*model.Request, error) {
	if err := requireClassTag(v, classTagRequest); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagRequest, requestKnownKeys)

	r := model.NewRequest()

	if subjectsVal, ok := getField(v, keySubjects); ok {
		subjects, err := subjectsFromTagFmt(subjectsVal)
		if err != nil {
			return nil, err
		}
		for _, s := range subjects {
			r.AddSubject(s)
		}
	}

	if resourcesVal, ok := getField(v, keyResources); ok {
		resources, err := resourcesFromTagFmt(resourcesVal)
		if err != nil {
			return nil, err
		}
		for _, res := range resources {
			r.AddResource(res)
		}
	}

	if actionVal, ok := getField(v, keyAction); ok && !actionVal.IsNull() {
		action, err := ActionFromTagFmt(actionVal)
		if err != nil {
			return nil, err
		}
		r.SetAction(action)
	}

	if envVal, ok := getField(v, keyEnvironment); ok && !envVal.IsNull() {
		env, err := EnvironmentFromTagFmt(envVal)
		if err != nil {
			return nil, err
		}
		r.SetEnvironment(env)
	}

	return r, nil
}
