package base64

import "errors"

// ErrMalformedLength is returned when the length of the input,
// after whitespace removal, is not a multiple of 4.
var ErrMalformedLength = errors.New("base64: input length is not a multiple of 4")

// ErrInvalidSymbol is returned when the input contains a byte
// outside the alphabet in a position that requires a value.
var ErrInvalidSymbol = errors.New("base64: input contains an invalid symbol")

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst.
//
// It returns the number of bytes written to dst. If src is
// invalid, Decode returns 0 and either ErrMalformedLength or
// ErrInvalidSymbol; nothing written to dst is meaningful in that
// case.
//
// Whitespace in src is ignored. Decoding stops at the first word
// that contains padding; see the package docs.
func Decode(dst, src []byte) (int, error) {
	compact := stripWhitespace(src)
	if len(compact)%4 != 0 {
		return 0, ErrMalformedLength
	}

	var n int
	for si := 0; si < len(compact); si += 4 {
		w := decodeWord(dst[n:], compact[si], compact[si+1], compact[si+2], compact[si+3])
		if w == 0 {
			return 0, ErrInvalidSymbol
		}
		n += w
		if w < 3 {
			// Padding ends the data. Anything after this
			// word is ignored.
			break
		}
	}
	return n, nil
}

// DecodeString decodes s.
//
// On error the returned slice is nil: a decode is all-or-nothing
// and no partial data is ever returned.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// decodeWord decodes the 4 symbols c0..c3 into at most 3 bytes
// of dst, returning the number of bytes produced.
//
// A pad character in position 2 or 3 shortens the yield to 1 or
// 2 bytes. A return of 0 means one of the symbols was invalid.
func decodeWord(dst []byte, c0, c1, c2, c3 byte) int {
	v0 := symbolToByte(c0)
	v1 := symbolToByte(c1)
	if v0 == invalidByte || v1 == invalidByte {
		return 0
	}

	dst[0] = v0<<2 | (v1&0x30)>>4

	if c2 == padChar {
		return 1
	}

	v2 := symbolToByte(c2)
	if v2 == invalidByte {
		return 0
	}

	dst[1] = (v1&0x0f)<<4 | (v2&0x3c)>>2

	if c3 == padChar {
		return 2
	}

	v3 := symbolToByte(c3)
	if v3 == invalidByte {
		return 0
	}

	dst[2] = (v2&0x03)<<6 | v3

	return 3
}

// stripWhitespace returns a copy of src with every space, tab,
// CR, and LF removed.
func stripWhitespace(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for _, c := range src {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
