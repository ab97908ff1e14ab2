// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"io"
)

// Set the reader error and return 0.
func parserSetReaderError(parser *Parser, problem string, offset int, value int) bool {
	parser.error = ReaderError
	parser.problem = problem
	parser.problemOffset = offset
	parser.problemValue = value
	return false
}

// Byte order marks.
const (
	bomUtf8    = "\xef\xbb\xbf"
	bomUtf16le = "\xff\xfe"
	bomUtf16be = "\xfe\xff"
)

// Determine the input stream encoding by checking the BOM symbol. If no BOM is
// found, the UTF-8 encoding is assumed. Return 1 on success, 0 on failure.
func parserDetermineEncoding(parser *Parser) bool {
	for !parser.eof && len(parser.rawBuffer)-parser.rawBufferPos < 3 {
		if !parserUpdateRawBuffer(parser) {
			return false
		}
	}

	buf := parser.rawBuffer
	pos := parser.rawBufferPos
	avail := len(buf) - pos
	if avail >= 2 && buf[pos] == bomUtf16le[0] && buf[pos+1] == bomUtf16le[1] {
		parser.encoding = UTF16LEEncoding
		parser.rawBufferPos += 2
		parser.offset += 2
	} else if avail >= 2 && buf[pos] == bomUtf16be[0] && buf[pos+1] == bomUtf16be[1] {
		parser.encoding = UTF16BEEncoding
		parser.rawBufferPos += 2
		parser.offset += 2
	} else if avail >= 3 && buf[pos] == bomUtf8[0] && buf[pos+1] == bomUtf8[1] && buf[pos+2] == bomUtf8[2] {
		parser.encoding = UTF8Encoding
		parser.rawBufferPos += 3
		parser.offset += 3
	} else {
		parser.encoding = UTF8Encoding
	}
	return true
}

// Update the raw buffer.
func parserUpdateRawBuffer(parser *Parser) bool {
	sizeRead := 0

	if parser.rawBufferPos == 0 && len(parser.rawBuffer) == cap(parser.rawBuffer) {
		return true
	}

	if parser.eof {
		return true
	}

	if parser.rawBufferPos > 0 && parser.rawBufferPos < len(parser.rawBuffer) {
		copy(parser.rawBuffer, parser.rawBuffer[parser.rawBufferPos:])
	}
	parser.rawBuffer = parser.rawBuffer[:len(parser.rawBuffer)-parser.rawBufferPos]
	parser.rawBufferPos = 0

	sizeRead, err := parser.readHandler(parser, parser.rawBuffer[len(parser.rawBuffer):cap(parser.rawBuffer)])
	parser.rawBuffer = parser.rawBuffer[:len(parser.rawBuffer)+sizeRead]
	if err == io.EOF {
		parser.eof = true
	} else if err != nil {
		return parserSetReaderError(parser, "input error: "+err.Error(), parser.offset, -1)
	}
	return true
}

// Ensure that the buffer contains at least `length` characters.
// Return true on success, false on failure.
//
// The length is supposed to be significantly less that the buffer size.
func parserUpdateBuffer(parser *Parser, length int) bool {
	if parser.readHandler == nil {
		panic("read handler must be set")
	}

	if parser.eof && parser.rawBufferPos == len(parser.rawBuffer) {
	}

	if parser.unread >= length {
		return true
	}

	if parser.encoding == AnyEncoding {
		if !parserDetermineEncoding(parser) {
			return false
		}
	}

	bufferLen := len(parser.buffer)
	if parser.bufferPos > 0 && parser.bufferPos < bufferLen {
		copy(parser.buffer, parser.buffer[parser.bufferPos:])
		bufferLen -= parser.bufferPos
		parser.bufferPos = 0
	} else if parser.bufferPos == bufferLen {
		bufferLen = 0
		parser.bufferPos = 0
	}

	parser.buffer = parser.buffer[:cap(parser.buffer)]

	first := true
	for parser.unread < length {
		if !first || parser.rawBufferPos == len(parser.rawBuffer) {
			if !parserUpdateRawBuffer(parser) {
				parser.buffer = parser.buffer[:bufferLen]
				return false
			}
		}
		first = false

	inner:
		for parser.rawBufferPos != len(parser.rawBuffer) {
			var value rune
			var width int

			rawUnread := len(parser.rawBuffer) - parser.rawBufferPos

			switch parser.encoding {
			case UTF8Encoding:

				octet := parser.rawBuffer[parser.rawBufferPos]
				switch {
				case octet&0x80 == 0x00:
					width = 1
				case octet&0xE0 == 0xC0:
					width = 2
				case octet&0xF0 == 0xE0:
					width = 3
				case octet&0xF8 == 0xF0:
					width = 4
				default:
					return parserSetReaderError(parser,
						"invalid leading UTF-8 octet",
						parser.offset, int(octet))
				}

				if width > rawUnread {
					if parser.eof {
						return parserSetReaderError(parser,
							"incomplete UTF-8 octet sequence",
							parser.offset, -1)
					}
					break inner
				}

				switch {
				case octet&0x80 == 0x00:
					value = rune(octet & 0x7F)
				case octet&0xE0 == 0xC0:
					value = rune(octet & 0x1F)
				case octet&0xF0 == 0xE0:
					value = rune(octet & 0x0F)
				case octet&0xF8 == 0xF0:
					value = rune(octet & 0x07)
				default:
					value = 0
				}

				for k := 1; k < width; k++ {
					octet = parser.rawBuffer[parser.rawBufferPos+k]

					if (octet & 0xC0) != 0x80 {
						return parserSetReaderError(parser,
							"invalid trailing UTF-8 octet",
							parser.offset+k, int(octet))
					}

					value = (value << 6) + rune(octet&0x3F)
				}

				switch {
				case width == 1:
				case width == 2 && value >= 0x80:
				case width == 3 && value >= 0x800:
				case width == 4 && value >= 0x10000:
				default:
					return parserSetReaderError(parser,
						"invalid length of a UTF-8 sequence",
						parser.offset, -1)
				}

				if value >= 0xD800 && value <= 0xDFFF || value > 0x10FFFF {
					return parserSetReaderError(parser,
						"invalid Unicode character",
						parser.offset, int(value))
				}

			case UTF16LEEncoding, UTF16BEEncoding:
				var low, high int
				if parser.encoding == UTF16LEEncoding {
					low, high = 0, 1
				} else {
					low, high = 1, 0
				}

				if rawUnread < 2 {
					if parser.eof {
						return parserSetReaderError(parser,
							"incomplete UTF-16 character",
							parser.offset, -1)
					}
					break inner
				}

				value = rune(parser.rawBuffer[parser.rawBufferPos+low]) +
					(rune(parser.rawBuffer[parser.rawBufferPos+high]) << 8)

				if value&0xFC00 == 0xDC00 {
					return parserSetReaderError(parser,
						"unexpected low surrogate area",
						parser.offset, int(value))
				}

				if value&0xFC00 == 0xD800 {
					width = 4

					if rawUnread < 4 {
						if parser.eof {
							return parserSetReaderError(parser,
								"incomplete UTF-16 surrogate pair",
								parser.offset, -1)
						}
						break inner
					}

					value2 := rune(parser.rawBuffer[parser.rawBufferPos+low+2]) +
						(rune(parser.rawBuffer[parser.rawBufferPos+high+2]) << 8)

					if value2&0xFC00 != 0xDC00 {
						return parserSetReaderError(parser,
							"expected low surrogate area",
							parser.offset+2, int(value2))
					}

					value = 0x10000 + ((value & 0x3FF) << 10) + (value2 & 0x3FF)
				} else {
					width = 2
				}

			default:
				panic("impossible")
			}

			switch {
			case value == 0x09:
			case value == 0x0A:
			case value == 0x0D:
			case value >= 0x20 && value <= 0x7E:
			case value == 0x85:
			case value >= 0xA0 && value <= 0xD7FF:
			case value >= 0xE000 && value <= 0xFFFD:
			case value >= 0x10000 && value <= 0x10FFFF:
			default:
				return parserSetReaderError(parser,
					"control characters are not allowed",
					parser.offset, int(value))
			}

			parser.rawBufferPos += width
			parser.offset += width

			if value <= 0x7F {
				parser.buffer[bufferLen+0] = byte(value)
				bufferLen++
			} else if value <= 0x7FF {
				parser.buffer[bufferLen+0] = byte(0xC0 + (value >> 6))
				parser.buffer[bufferLen+1] = byte(0x80 + (value & 0x3F))
				bufferLen += 2
			} else if value <= 0xFFFF {
				parser.buffer[bufferLen+0] = byte(0xE0 + (value >> 12))
				parser.buffer[bufferLen+1] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[bufferLen+2] = byte(0x80 + (value & 0x3F))
				bufferLen += 3
			} else {
				parser.buffer[bufferLen+0] = byte(0xF0 + (value >> 18))
				parser.buffer[bufferLen+1] = byte(0x80 + ((value >> 12) & 0x3F))
				parser.buffer[bufferLen+2] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[bufferLen+3] = byte(0x80 + (value & 0x3F))
				bufferLen += 4
			}

			parser.unread++
		}

		if parser.eof {
			parser.buffer[bufferLen] = 0
			bufferLen++
			parser.unread++
			break
		}
	}
	for bufferLen < length {
		parser.buffer[bufferLen] = 0
		bufferLen++
	}
	parser.buffer = parser.buffer[:bufferLen]
	return true
}
