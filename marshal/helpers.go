package marshal

import (
	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

// optionalStringToTagFmt encodes s as a TagFmt string, or null when s is
// nil (spec §4.3: optional scalar fields never omitted, always null).
func optionalStringToTagFmt(s *string) tagfmt.Value {
	if s == nil {
		return tagfmt.Null()
	}

	return tagfmt.StringValue(*s)
}

// optionalStringFromTagFmt decodes v into a *string, accepting both
// TagFmt null (absent) and a string value. Any other kind is a protocol
// error.
func optionalStringFromTagFmt(v tagfmt.Value, field string) (*string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if v.Kind != tagfmt.KindString {
		return nil, errs.Newf(errs.UnmarshalModel, "field %q: expected string or null, got kind %d", field, v.Kind)
	}
	s := v.String

	return &s, nil
}

// requiredStringFromTagFmt decodes v into a string; v must not be null.
func requiredStringFromTagFmt(v tagfmt.Value, field string) (string, error) {
	if v.Kind != tagfmt.KindString {
		return "", errs.Newf(errs.UnmarshalModel, "field %q: expected string, got kind %d", field, v.Kind)
	}

	return v.String, nil
}

// requiredInt32FromTagFmt decodes v into an int32; v must not be null.
func requiredInt32FromTagFmt(v tagfmt.Value, field string) (int32, error) {
	if v.Kind != tagfmt.KindInt32 {
		return 0, errs.Newf(errs.UnmarshalModel, "field %q: expected int32, got kind %d", field, v.Kind)
	}

	return v.Int32, nil
}

// stringsToTagFmt builds a TagFmt list of string values, preserving
// order. Always a list, even when values is empty (spec §4.3).
func stringsToTagFmt(values []string) tagfmt.Value {
	elems := make([]tagfmt.Value, len(values))
	for i, s := range values {
		elems[i] = tagfmt.StringValue(s)
	}

	return tagfmt.ListValue(elems)
}

// stringsFromTagFmt decodes a TagFmt list of strings.
func stringsFromTagFmt(v tagfmt.Value, field string) ([]string, error) {
	if v.Kind != tagfmt.KindList {
		return nil, errs.Newf(errs.UnmarshalModel, "field %q: expected list, got kind %d", field, v.Kind)
	}

	out := make([]string, len(v.List))
	for i, elem := range v.List {
		s, err := requiredStringFromTagFmt(elem, field)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

// requireClassTag validates that v is a Map whose type header matches
// want exactly (spec §4.3: "mismatch yields a protocol error").
func requireClassTag(v tagfmt.Value, want string) error {
	if v.Kind != tagfmt.KindMap {
		return errs.Newf(errs.UnmarshalModel, "expected map with class tag %q, got kind %d", want, v.Kind)
	}

	got, ok := v.ClassTag()
	if !ok {
		return errs.Newf(errs.UnmarshalModel, "expected class tag %q, got none", want)
	}
	if got != want {
		return errs.Newf(errs.UnmarshalModel, "expected class tag %q, got %q", want, got)
	}

	return nil
}

// getField fetches key from a decoded map and reports whether it was
// present; callers decide whether a missing required key is fatal. It
// does not warn: FromTagFmt functions read only their expected keys
// through it, and unknown keys are reported separately by
// warnUnknownKeys.
func getField(v tagfmt.Value, key string) (tagfmt.Value, bool) {
	return v.Get(key)
}

// warnUnknownKeys logs (but never fails on) any map key in v that isn't
// in known (spec §4.3: "unknown map keys are skipped with a warning").
func warnUnknownKeys(v tagfmt.Value, classTag string, known map[string]struct{}) {
	for _, entry := range v.Map {
		if entry.Key.Kind != tagfmt.KindString {
			continue
		}
		if _, ok := known[entry.Key.String]; !ok {
			Warnf("%s: skipping unknown key %q", classTag, entry.Key.String)
		}
	}
}
