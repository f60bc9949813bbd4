package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var responseKnownKeys = map[string]struct{}{
	keyRequest: {},
	keyResults: {},
}

// ResponseToTagFmt encodes r into its TagFmt map representation. Request
// encodes as null when the PDP response does not echo the original
// request.
func ResponseToTagFmt(r *model.Response) tagfmt.Value {
	requestVal := tagfmt.Null()
	if r.Request != nil {
		requestVal = RequestToTagFmt(r.Request)
	}

	return tagfmt.MapValueWithType(classTagResponse, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyRequest), Value: requestVal},
		{Key: tagfmt.StringValue(keyResults), Value: resultsToTagFmt(r.Results)},
	})
}

// ResponseFromTagFmt decodes v into a Response.
func ResponseFromTagFmt(v tagfmt.Value) (*model.Response, error) {
	if err := requireClassTag(v, classTagResponse); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagResponse, responseKnownKeys)

	resp := model.NewResponse()

	if requestVal, ok := getField(v, keyRequest); ok && !requestVal.IsNull() {
		req, err := RequestFromTagFmt(requestVal)
		if err != nil {
			return nil, err
		}
		resp.SetRequest(req)
	}

	if resultsVal, ok := getField(v, keyResults); ok {
		results, err := resultsFromTagFmt(resultsVal)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			resp.AddResult(r)
		}
	}

	return resp, nil
}
