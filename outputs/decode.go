package outputs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/reusee/bfvm/counters"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	ErrEncoding        = errors.New("encoding error")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

const UTF8 = "utf-8"

// EncodingError reports why a buffer could not be decoded.
// Index is the offending value or byte position, -1 if not attributable.
type EncodingError struct {
	Encoding string
	Index    int
	Value    counters.Counter
	Reason   string
}

func (e *EncodingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrEncoding, e.Encoding, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s at %d (value %v)", ErrEncoding, e.Encoding, e.Reason, e.Index, e.Value)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

// Bytes converts every value to a byte, failing if any is above 255.
func (b *Buffer) Bytes() ([]byte, error) {
	ret := make([]byte, 0, len(b.values))
	for i, value := range b.values {
		n, ok := value.Uint64()
		if !ok || n > 255 {
			return nil, &EncodingError{
				Encoding: "byte",
				Index:    i,
				Value:    value,
				Reason:   "value out of byte range",
			}
		}
		ret = append(ret, byte(n))
	}
	return ret, nil
}

// Decode decodes the buffer as UTF-8 text. Nothing is returned on failure.
func Decode(b *Buffer) (string, error) {
	return DecodeAs(b, UTF8)
}

// DecodeAs decodes the buffer in the named IANA charset.
func DecodeAs(b *Buffer, encoding string) (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}

	if isUTF8(encoding) {
		for i := 0; i < len(data); {
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", &EncodingError{
					Encoding: UTF8,
					Index:    i,
					Value:    b.values[i],
					Reason:   "invalid utf-8 sequence",
				}
			}
			i += size
		}
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnknownEncoding, encoding, err)
	}
	if enc == nil {
		return "", fmt.Errorf("%w: %s: unsupported", ErrUnknownEncoding, encoding)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &EncodingError{
			Encoding: encoding,
			Index:    -1,
			Reason:   err.Error(),
		}
	}
	// undefined code points decode to the replacement character
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", &EncodingError{
			Encoding: encoding,
			Index:    -1,
			Reason:   "byte sequence has no mapping",
		}
	}
	return string(decoded), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
