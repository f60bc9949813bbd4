package tagfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argus-pep/argus-pep-go/internal/pool"
)

func encode(t *testing.T, v Value) []byte {
	t.Helper()
	buf := pool.NewByteBuffer(64)
	enc := NewEncoder(buf)
	require.NoError(t, enc.Encode(v))

	return append([]byte(nil), enc.Bytes()...)
}

func TestEncodeNull(t *testing.T) {
	b := encode(t, Null())
	require.Equal(t, []byte{byte(TagNull)}, b)
}

func TestEncodeDecode_Int32_RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2147483647, -2147483648} {
		b := encode(t, Int32Value(v))
		require.Equal(t, byte(TagInt32), b[0])

		dec := NewDecoderFromBytes(b)
		got, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, KindInt32, got.Kind)
		require.Equal(t, v, got.Int32)
	}
}

func TestEncodeDecode_String_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"café",
		"\U0001F600", // surrogate pair
	}

	for _, s := range cases {
		b := encode(t, StringValue(s))
		dec := NewDecoderFromBytes(b)
		got, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, KindString, got.Kind)
		require.Equal(t, s, got.String)
	}
}

func TestEncode_String_ChunksLongStrings(t *testing.T) {
	long := strings.Repeat("a", maxChunkLen+10)
	b := encode(t, StringValue(long))

	require.Equal(t, byte(TagStringMore), b[0], "first chunk must be non-final")

	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, long, got.String)
}

func TestEncodeDecode_List_RoundTrip(t *testing.T) {
	list := ListValue([]Value{Int32Value(1), StringValue("a"), Null()})
	b := encode(t, list)

	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, KindList, got.Kind)
	require.Len(t, got.List, 3)
	require.Equal(t, int32(1), got.List[0].Int32)
	require.Equal(t, "a", got.List[1].String)
	require.True(t, got.List[2].IsNull())
}

func TestEncodeDecode_List_WithTypeHeaderAndLength(t *testing.T) {
	list := ListValueWithType("xacml.ctx.Attribute", []Value{StringValue("v1"), StringValue("v2")})
	list.HasLength = true
	b := encode(t, list)

	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)

	tag, ok := got.ClassTag()
	require.True(t, ok)
	require.Equal(t, "xacml.ctx.Attribute", tag)
	require.True(t, got.HasLength)
	require.Len(t, got.List, 2)
}

func TestEncodeDecode_List_NoTypeHeader_StringElements(t *testing.T) {
	// A header-less list whose first element is itself a string must not
	// be confused with a list carrying a type header: the type header
	// uses the dedicated 't' tag, never 'S'/'s'.
	list := ListValue([]Value{StringValue("CN=Alice,O=Example,C=CH"), StringValue("second")})
	b := encode(t, list)

	require.Equal(t, byte(TagList), b[0])
	require.Equal(t, byte(TagStringLast), b[1], "first element must be written as a plain string, not a type header")

	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)
	require.False(t, got.HasTypeHeader)
	require.Len(t, got.List, 2)
	require.Equal(t, "CN=Alice,O=Example,C=CH", got.List[0].String)
	require.Equal(t, "second", got.List[1].String)
}

func TestEncodeDecode_List_Empty(t *testing.T) {
	b := encode(t, ListValue(nil))
	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)
	require.Empty(t, got.List)
}

func TestEncodeDecode_Map_RoundTrip(t *testing.T) {
	m := MapValueWithType("xacml.ctx.Attribute", []MapEntry{
		{Key: StringValue("id"), Value: StringValue("subject-id")},
		{Key: StringValue("dataType"), Value: Null()},
	})
	b := encode(t, m)

	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, KindMap, got.Kind)

	tag, ok := got.ClassTag()
	require.True(t, ok)
	require.Equal(t, "xacml.ctx.Attribute", tag)

	v, ok := got.Get("id")
	require.True(t, ok)
	require.Equal(t, "subject-id", v.String)

	v, ok = got.Get("dataType")
	require.True(t, ok)
	require.True(t, v.IsNull())

	_, ok = got.Get("missing")
	require.False(t, ok)
}

func TestEncodeDecode_Map_NestedStatusCode(t *testing.T) {
	inner := MapValueWithType("xacml.ctx.StatusCode", []MapEntry{
		{Key: StringValue("code"), Value: StringValue("urn:...:missing-attribute")},
		{Key: StringValue("subcode"), Value: Null()},
	})
	outer := MapValueWithType("xacml.ctx.StatusCode", []MapEntry{
		{Key: StringValue("code"), Value: StringValue("urn:...:ok")},
		{Key: StringValue("subcode"), Value: inner},
	})

	b := encode(t, outer)
	dec := NewDecoderFromBytes(b)
	got, err := dec.Decode()
	require.NoError(t, err)

	sub, ok := got.Get("subcode")
	require.True(t, ok)
	require.Equal(t, KindMap, sub.Kind)

	code, ok := sub.Get("code")
	require.True(t, ok)
	require.Equal(t, "urn:...:missing-attribute", code.String)
}

func TestDecode_UnknownTagByte(t *testing.T) {
	dec := NewDecoderFromBytes([]byte{0xFF})
	_, err := dec.Decode()
	require.Error(t, err)
}

func TestDecode_TruncatedStream(t *testing.T) {
	dec := NewDecoderFromBytes([]byte{byte(TagInt32), 0x00, 0x00})
	_, err := dec.Decode()
	require.Error(t, err)
}
