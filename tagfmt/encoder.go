package tagfmt

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/argus-pep/argus-pep-go/internal/pool"
)

// Encoder serializes Values into TagFmt bytes over a pooled byte buffer,
// mirroring the teacher's pre-grow-then-append write discipline.
type Encoder struct {
	buf *pool.ByteBuffer
}

// NewEncoder wraps buf for encoding. buf is grown as needed and never
// reset by the encoder; callers own its lifecycle (get it from a pool
// before encoding, put it back after reading Bytes()).
func NewEncoder(buf *pool.ByteBuffer) *Encoder {
	return &Encoder{buf: buf}
}

// Bytes returns the bytes written so far.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Encode writes v to the underlying buffer.
func (e *Encoder) Encode(v Value) error {
	switch v.Kind {
	case KindNull:
		e.EncodeNull()
	case KindInt32:
		e.EncodeInt32(v.Int32)
	case KindString:
		e.EncodeString(v.String)
	case KindList:
		return e.EncodeList(v)
	case KindMap:
		return e.EncodeMap(v)
	}

	return nil
}

// EncodeNull writes a single null tag.
func (e *Encoder) EncodeNull() {
	e.writeByte(byte(TagNull))
}

// EncodeInt32 writes an int32 tag followed by 4 big-endian bytes.
func (e *Encoder) EncodeInt32(v int32) {
	e.buf.Grow(5)
	e.writeByte(byte(TagInt32))
	e.writeRawInt32(v)
}

// writeRawInt32 writes v as 4 big-endian bytes with no leading tag,
// used for the 'l' list-length header whose tag byte is written by the
// caller.
func (e *Encoder) writeRawInt32(v int32) {
	e.buf.Grow(4)

	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	e.buf.MustWrite(tmp[:])
}

// EncodeString writes s, splitting into chunks of at most maxChunkLen
// UTF-16 code units, terminated by exactly one final ('S') chunk.
func (e *Encoder) EncodeString(s string) {
	units := utf16.Encode([]rune(s))

	if len(units) == 0 {
		e.writeStringChunk(TagStringLast, units)

		return
	}

	for offset := 0; offset < len(units); offset += maxChunkLen {
		end := offset + maxChunkLen
		final := end >= len(units)
		if final {
			end = len(units)
		}

		tag := TagStringMore
		if final {
			tag = TagStringLast
		}

		e.writeStringChunk(tag, units[offset:end])
	}
}

func (e *Encoder) writeStringChunk(tag Tag, units []uint16) {
	payload := string(utf16.Decode(units))
	payloadBytes := []byte(payload)

	e.buf.Grow(3 + len(payloadBytes))
	e.writeByte(byte(tag))

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(units)))
	e.buf.MustWrite(lenBuf[:])
	e.buf.MustWrite(payloadBytes)
}

// encodeTypeHeader writes s as a list/map class tag using the dedicated
// 't' tag, never the value-string 'S'/'s' tags, so a decoder can tell a
// type header apart from a list's or map's first string element without
// any lookahead. Class tags are always short enough to fit one chunk.
func (e *Encoder) encodeTypeHeader(s string) {
	units := utf16.Encode([]rune(s))
	payloadBytes := []byte(string(utf16.Decode(units)))

	e.buf.Grow(3 + len(payloadBytes))
	e.writeByte(byte(TagType))

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(units)))
	e.buf.MustWrite(lenBuf[:])
	e.buf.MustWrite(payloadBytes)
}

// EncodeList writes a list value: the 'V' tag, an optional type header,
// an optional length header, each element, and the terminator.
func (e *Encoder) EncodeList(v Value) error {
	e.writeByte(byte(TagList))

	if v.HasTypeHeader {
		e.encodeTypeHeader(v.TypeHeader.String)
	}

	if v.HasLength {
		e.writeByte(byte(TagListLength))
		e.writeRawInt32(int32(len(v.List)))
	}

	for _, elem := range v.List {
		if err := e.Encode(elem); err != nil {
			return err
		}
	}

	e.writeByte(byte(TagTerminator))

	return nil
}

// EncodeMap writes a map value: the 'M' tag, an optional type header,
// each (key, value) pair, and the terminator.
func (e *Encoder) EncodeMap(v Value) error {
	e.writeByte(byte(TagMap))

	if v.HasTypeHeader {
		e.encodeTypeHeader(v.TypeHeader.String)
	}

	for _, entry := range v.Map {
		if err := e.Encode(entry.Key); err != nil {
			return err
		}
		if err := e.Encode(entry.Value); err != nil {
			return err
		}
	}

	e.writeByte(byte(TagTerminator))

	return nil
}

func (e *Encoder) writeByte(b byte) {
	e.buf.Grow(1)
	e.buf.MustWrite([]byte{b})
}
