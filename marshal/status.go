package marshal

import (
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

var statusCodeKnownKeys = map[string]struct{}{
	keyCode:    {},
	keySubcode: {},
}

var statusKnownKeys = map[string]struct{}{
	keyMessage: {},
	keyCode:    {},
}

// StatusCodeToTagFmt encodes sc into its TagFmt map representation,
// recursing into Subcode (encoded as null when absent).
func StatusCodeToTagFmt(sc *model.StatusCode) tagfmt.Value {
	subVal := tagfmt.Null()
	if sc.Subcode != nil {
		subVal = StatusCodeToTagFmt(sc.Subcode)
	}

	return tagfmt.MapValueWithType(classTagStatusCode, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyCode), Value: tagfmt.StringValue(sc.Code)},
		{Key: tagfmt.StringValue(keySubcode), Value: subVal},
	})
}

// StatusCodeFromTagFmt decodes v into a StatusCode, recursing into
// Subcode.
func StatusCodeFromTagFmt(v tagfmt.Value) (*model.StatusCode, error) {
	if err := requireClassTag(v, classTagStatusCode); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagStatusCode, statusCodeKnownKeys)

	codeVal, _ := getField(v, keyCode)
	code, err := requiredStringFromTagFmt(codeVal, keyCode)
	if err != nil {
		return nil, err
	}

	sc, err := model.NewStatusCode(code)
	if err != nil {
		return nil, err
	}

	if subVal, ok := getField(v, keySubcode); ok && !subVal.IsNull() {
		sub, err := StatusCodeFromTagFmt(subVal)
		if err != nil {
			return nil, err
		}
		sc.SetSubcode(sub)
	}

	return sc, nil
}

// StatusToTagFmt encodes s into its TagFmt map representation. Code
// encodes as null when absent.
func StatusToTagFmt(s *model.Status) tagfmt.Value {
	codeVal := tagfmt.Null()
	if s.Code != nil {
		codeVal = StatusCodeToTagFmt(s.Code)
	}

	return tagfmt.MapValueWithType(classTagStatus, []tagfmt.MapEntry{
		{Key: tagfmt.StringValue(keyMessage), Value: tagfmt.StringValue(s.Message)},
		{Key: tagfmt.StringValue(keyCode), Value: codeVal},
	})
}

// StatusFromTagFmt decodes v into a Status.
func StatusFromTagFmt(v tagfmt.Value) (*model.Status, error) {
	if err := requireClassTag(v, classTagStatus); err != nil {
		return nil, err
	}
	warnUnknownKeys(v, classTagStatus, statusKnownKeys)

	s := model.NewStatus()

	if msgVal, ok := getField(v, keyMessage); ok {
		msg, err := requiredStringFromTagFmt(msgVal, keyMessage)
		if err != nil {
			return nil, err
		}
		s.SetMessage(msg)
	}

	if codeVal, ok := getField(v, keyCode); ok && !codeVal.IsNull() {
		code, err := StatusCodeFromTagFmt(codeVal)
		if err != nil {
			return nil, err
		}
		s.SetCode(code)
	}

	return s, nil
}
