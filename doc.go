// Package base64 implements standard Base64 encoding and decoding
// as specified by RFC 4648, section 4.
//
// Comparison to encoding/base64
//
// This package is close to, but not a drop-in replacement for
// encoding/base64.
//
// Unlike encoding/base64, the decoder ignores the whitespace
// characters ' ', '\t', '\r', and '\n' wherever they occur in the
// input. The length check and all word boundaries apply to the input
// after whitespace removal.
//
// Unlike encoding/base64, the decoder stops at the first padded
// word. Any input following a word that contains padding is silently
// ignored rather than rejected:
//
//    DecodeString("TWFuTWE=TQ==") // "ManMa", nil
//
// Unlike encoding/base64, the encoder infers padding from the
// encoded value rather than from the remainder count. A tail of two
// bytes whose final byte has a zero low nibble therefore collapses
// into two padding characters:
//
//    EncodeToString([]byte{0x4d, 0x60}) // "TW==", decodes to {0x4d}
//
// Callers that cannot tolerate these behaviors should use
// encoding/base64 instead.
package base64
