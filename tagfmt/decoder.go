package tagfmt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf16"

	"github.com/argus-pep/argus-pep-go/errs"
)

// Decoder reads TagFmt values from a byte stream. Decoding is streaming
// and never backtracks: each call to Decode consumes exactly the bytes
// of one top-level value.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder wraps src for decoding. If src does not already implement
// io.ByteReader it is wrapped in a bufio.Reader.
func NewDecoder(src io.Reader) *Decoder {
	if br, ok := src.(io.ByteReader); ok {
		return &Decoder{r: br}
	}

	return &Decoder{r: bufio.NewReader(src)}
}

// NewDecoderFromBytes is a convenience constructor over an in-memory
// buffer.
func NewDecoderFromBytes(b []byte) *Decoder {
	return NewDecoder(bytes.NewReader(b))
}

// Decode consumes and returns exactly one top-level value.
func (d *Decoder) Decode() (Value, error) {
	tag, err := d.readTag()
	if err != nil {
		return Value{}, err
	}

	return d.decodeValue(tag)
}

func (d *Decoder) decodeValue(tag Tag) (Value, error) {
	switch tag {
	case TagNull:
		return Null(), nil
	case TagInt32:
		v, err := d.readRawInt32()
		if err != nil {
			return Value{}, err
		}

		return Int32Value(v), nil
	case TagStringLast, TagStringMore:
		s, err := d.decodeString(tag)
		if err != nil {
			return Value{}, err
		}

		return StringValue(s), nil
	case TagList:
		return d.decodeList()
	case TagMap:
		return d.decodeMap()
	default:
		return Value{}, errs.Newf(errs.UnmarshalIO, "unknown tag byte 0x%02x", byte(tag))
	}
}

func (d *Decoder) decodeString(first Tag) (string, error) {
	var units []uint16

	tag := first
	for {
		chunk, err := d.readStringChunk()
		if err != nil {
			return "", err
		}
		units = append(units, chunk...)

		if tag == TagStringLast {
			break
		}

		tag, err = d.readTag()
		if err != nil {
			return "", err
		}
		if tag != TagStringLast && tag != TagStringMore {
			return "", errs.Newf(errs.UnmarshalIO, "expected string chunk tag, got 0x%02x", byte(tag))
		}
	}

	return string(utf16.Decode(units)), nil
}

// decodeTypeHeader reads the body of a 't'-tagged list/map type header.
// Unlike value strings, a type header is always a single chunk.
func (d *Decoder) decodeTypeHeader() (string, error) {
	units, err := d.readStringChunk()
	if err != nil {
		return "", err
	}

	return string(utf16.Decode(units)), nil
}

func (d *Decoder) readStringChunk() ([]uint16, error) {
	var lenBuf [2]byte
	if err := d.readFull(lenBuf[:]); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint16(lenBuf[:])

	units := make([]uint16, 0, length)
	for len(units) < int(length) {
		r, size, err := d.readUTF8Rune()
		if err != nil {
			return nil, err
		}
		encoded := utf16.Encode([]rune{r})
		units = append(units, encoded...)
		_ = size
	}

	return units, nil
}

// readUTF8Rune decodes one UTF-8-encoded rune from the stream.
func (d *Decoder) readUTF8Rune() (rune, int, error) {
	first, err := d.r.ReadByte()
	if err != nil {
		return 0, 0, wrapReadErr(err)
	}

	var size int
	switch {
	case first&0x80 == 0x00:
		size = 1
	case first&0xE0 == 0xC0:
		size = 2
	case first&0xF0 == 0xE0:
		size = 3
	case first&0xF8 == 0xF0:
		size = 4
	default:
		return 0, 0, errs.New(errs.UnmarshalIO, "invalid utf-8 lead byte")
	}

	buf := make([]byte, size)
	buf[0] = first
	for i := 1; i < size; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, 0, wrapReadErr(err)
		}
		buf[i] = b
	}

	runes := []rune(string(buf))
	if len(runes) != 1 {
		return 0, 0, errs.New(errs.UnmarshalIO, "invalid utf-8 sequence")
	}

	return runes[0], size, nil
}

func (d *Decoder) decodeList() (Value, error) {
	v := Value{Kind: KindList}

	tag, err := d.readTag()
	if err != nil {
		return Value{}, err
	}

	// Optional type header: the dedicated 't' tag, unambiguous even when
	// the list's elements are themselves strings.
	if tag == TagType {
		s, err := d.decodeTypeHeader()
		if err != nil {
			return Value{}, err
		}
		v.TypeHeader = StringValue(s)
		v.HasTypeHeader = true

		tag, err = d.readTag()
		if err != nil {
			return Value{}, err
		}
	}

	// Optional length header.
	if tag == TagListLength {
		n, err := d.readRawInt32()
		if err != nil {
			return Value{}, err
		}
		v.HasLength = true
		_ = n // decoder trusts the terminator, not the declared length

		tag, err = d.readTag()
		if err != nil {
			return Value{}, err
		}
	}

	for tag != TagTerminator {
		elem, err := d.decodeValue(tag)
		if err != nil {
			return Value{}, err
		}
		v.List = append(v.List, elem)

		tag, err = d.readTag()
		if err != nil {
			return Value{}, err
		}
	}

	if v.List == nil {
		v.List = []Value{}
	}

	return v, nil
}

func (d *Decoder) decodeMap() (Value, error) {
	v := Value{Kind: KindMap}

	tag, err := d.readTag()
	if err != nil {
		return Value{}, err
	}

	// Optional type header.
	if tag == TagType {
		s, err := d.decodeTypeHeader()
		if err != nil {
			return Value{}, err
		}
		v.TypeHeader = StringValue(s)
		v.HasTypeHeader = true

		tag, err = d.readTag()
		if err != nil {
			return Value{}, err
		}
	}

	for tag != TagTerminator {
		key, err := d.decodeValue(tag)
		if err != nil {
			return Value{}, err
		}

		val, err := d.Decode()
		if err != nil {
			return Value{}, err
		}

		v.Map = append(v.Map, MapEntry{Key: key, Value: val})

		tag, err = d.readTag()
		if err != nil {
			return Value{}, err
		}
	}

	if v.Map == nil {
		v.Map = []MapEntry{}
	}

	return v, nil
}

func (d *Decoder) readTag() (Tag, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, wrapReadErr(err)
	}

	return Tag(b), nil
}

func (d *Decoder) readRawInt32() (int32, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *Decoder) readFull(buf []byte) error {
	for i := range buf {
		b, err := d.r.ReadByte()
		if err != nil {
			return wrapReadErr(err)
		}
		buf[i] = b
	}

	return nil
}

func wrapReadErr(err error) error {
	if err == io.EOF {
		return errs.Wrap(errs.UnmarshalIO, "unexpected end of stream", err)
	}

	return errs.Wrap(errs.UnmarshalIO, "read failure", err)
}
