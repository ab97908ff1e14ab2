// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

const (
	inputRawBufferSize = 512
	inputBufferSize    = inputRawBufferSize * 3

	outputBufferSize = 128

	initialStackSize = 16
	initialQueueSize = 16
)

// isSupportedVersion reports whether a %YAML directive names a version
// the scanner and emitter accept.
func isSupportedVersion(major, minor int8) bool {
	return major == 1 && (minor == 1 || minor == 2)
}

// Character classes. Each helper inspects b[i]; multi-byte checks
// expect the caller to have buffered enough bytes.

func isAlpha(b []byte, i int) bool {
	c := b[i]
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_' || c == '-'
}

func isDigit(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

func asDigit(b []byte, i int) int {
	return int(b[i]) - '0'
}

func isHex(b []byte, i int) bool {
	c := b[i]
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

func asHex(b []byte, i int) int {
	c := b[i]
	switch {
	case c >= 'A' && c <= 'F':
		return int(c) - 'A' + 10
	case c >= 'a' && c <= 'f':
		return int(c) - 'a' + 10
	}
	return int(c) - '0'
}

func isASCII(b []byte, i int) bool {
	return b[i] <= 0x7F
}

// isPrintable accepts the characters allowed unescaped in a YAML stream.
func isPrintable(b []byte, i int) bool {
	switch c := b[i]; {
	case c == 0x0A:
		return true
	case c >= 0x20 && c <= 0x7E:
		return true
	case c == 0xC2:
		return b[i+1] >= 0xA0
	case c > 0xC2 && c < 0xED:
		return true
	case c == 0xED:
		return b[i+1] < 0xA0
	case c == 0xEE:
		return true
	case c == 0xEF:
		// Exclude the BOM and U+FFFE, U+FFFF.
		if b[i+1] == 0xBB && b[i+2] == 0xBF {
			return false
		}
		if b[i+1] == 0xBF && (b[i+2] == 0xBE || b[i+2] == 0xBF) {
			return false
		}
		return true
	}
	return false
}

func isZ(b []byte, i int) bool {
	return b[i] == 0x00
}

func isBom(b []byte, i int) bool {
	return b[i] == 0xEF && b[i+1] == 0xBB && b[i+2] == 0xBF
}

func isSpace(b []byte, i int) bool {
	return b[i] == ' '
}

func isTab(b []byte, i int) bool {
	return b[i] == '\t'
}

func isBlank(b []byte, i int) bool {
	return b[i] == ' ' || b[i] == '\t'
}

// isBreak matches CR, LF, NEL (U+0085), LS (U+2028) and PS (U+2029).
func isBreak(b []byte, i int) bool {
	switch b[i] {
	case '\r', '\n':
		return true
	case 0xC2:
		return b[i+1] == 0x85
	case 0xE2:
		return b[i+1] == 0x80 && (b[i+2] == 0xA8 || b[i+2] == 0xA9)
	}
	return false
}

func isCrlf(b []byte, i int) bool {
	return b[i] == '\r' && b[i+1] == '\n'
}

func isBreakz(b []byte, i int) bool {
	return isZ(b, i) || isBreak(b, i)
}

func isBlankz(b []byte, i int) bool {
	return isBlank(b, i) || isBreakz(b, i)
}

// width returns the length of the UTF-8 sequence introduced by b,
// or 0 when b cannot start one.
func width(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}
