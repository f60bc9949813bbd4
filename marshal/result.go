package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var resultKnownKeys = map[string]struct{}{
	keyDecision:    {},
	keyResourceID:  {},
	keyStatus:      {},
	keyObligations: {},
}

// ResultToTagFmt encodes r into its TagFmt map representation. Status
// encodes as null when absent.
func ResultToTagFmt(r *model.Result) tagfmt.Value {
	statusVal := tagfmt.Null()
	if r.Status != nil {
		statusVal = StatusToTagFmt(r.Status)
	}

	return tagfmt.MapValueWithType(classTagResult, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyDecision), Value: tagfmt.Int32Value(int32(r.Decision))},
		{Key: tagfmt.StringValue(keyResourceID), Value: tagfmt.StringValue(r.ResourceID)},
		{Key: tagfmt.StringValue(keyStatus), Value: statusVal},
		{Key: tagfmt.StringValue(keyObligations), Value: obligationsToTagFmt(r.Obligations)},
	})
}

// ResultFromTagFmt decodes v into a Result.
func ResultFromTagFmt(v tagfmt.Value) (*model.Result, error) {
	if err := requireClassTag(v, classTagResult); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagResult, resultKnownKeys)

	decisionVal, _ := getField(v, keyDecision)
	decisionRaw, err := requiredInt32FromTagFmt(decisionVal, keyDecision)
	if err != nil {
		return nil, err
	}
	decision, err := model.DecisionFromInt32(decisionRaw)
	if err != nil {
		return nil, err
	}

	result := model.NewResult(decision)

	if resourceIDVal, ok := getField(v, keyResourceID); ok {
		resourceID, err := requiredStringFromTagFmt(resourceIDVal, keyResourceID)
		if err != nil {
			return nil, err
		}
		result.SetResourceID(resourceID)
	}

	if statusVal, ok := getField(v, keyStatus); ok && !statusVal.IsNull() {
		status, err := StatusFromTagFmt(statusVal)
		if err != nil {
			return nil, err
		}
		result.SetStatus(status)
	}

	if obligationsVal, ok := getField(v, keyObligations); ok {
		obligations, err := obligationsFromTagFmt(obligationsVal)
		if err != nil {
			return nil, err
		}
		for _, o := range obligations {
			result.AddObligation(o)
		}
	}

	return result, nil
}

func resultsToTagFmt(results []*model.Result) tagfmt.Value {
	elems := make([]tagfmt.Value, len(results))
	for i, r := range results {
		elems[i] = ResultToTagFmt(r)
	}

	return tagfmt.ListValueWithType(classTagResult, elems)
}

func resultsFromTagFmt(v tagfmt.Value) ([]*model.Result, error) {
	if v.Kind != tagfmt.KindList {
		return nil, requireClassTag(v, classTagResult)
	}

	out := make([]*model.Result, len(v.List))
	for i, elem := range v.List {
		r, err := ResultFromTagFmt(elem)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}
