package base64

// encodeTable maps each 6-bit value to its Base64 symbol.
//
// It uses the standard table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
const encodeTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

// padChar terminates an encoded word that carries fewer than
// 3 bytes.
const padChar = '='

// invalidByte marks a byte outside the alphabet. It is distinct
// from every 6-bit value.
const invalidByte = 0xff

// symbolToByte converts the Base64 symbol c to its 6-bit binary
// value.
//
// The pad character maps to 0: it carries no value of its own,
// callers test for it before calling. If c is not in the
// alphabet and not the pad character, symbolToByte returns
// invalidByte.
func symbolToByte(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A'
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26
	case c >= '0' && c <= '9':
		return c - '0' + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	case c == padChar:
		return 0
	}
	return invalidByte
}
