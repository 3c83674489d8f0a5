/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package protocol

import (
	"encoding/binary"
	"strings"

	liberr "github.com/sabouaram/distfs/errors"
)

// GroupNameLen, IPLen and ExtLen are the fixed widths of the ASCII string
// fields used throughout tracker and storage frame bodies.
const (
	GroupNameLen = 16
	IPLen        = 16
	ExtLen       = 6
	PrefixLen    = 16
	MasterPathLen = 128
)

// EncodeFixedString zero-pads s to width bytes. It fails with
// ErrorInvalidArgument if s is longer than width.
func EncodeFixedString(s string, width int) ([]byte, liberr.Error) {
	if len(s) > width {
		return nil, ErrorInvalidArgument.Errorf("value %q exceeds fixed width %d", s, width)
	}

	b := make([]byte, width)
	copy(b, s)

	return b, nil
}

// DecodeFixedString strips trailing NUL padding from a fixed-width ASCII
// field.
func DecodeFixedString(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

// EncodeInt64 big-endian encodes v as an 8-byte field.
func EncodeInt64(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// DecodeInt64 decodes an 8-byte big-endian field.
func DecodeInt64(b []byte) (int64, liberr.Error) {
	if len(b) < 8 {
		return 0, ErrorProtocol.Errorf("short int64 field: %d bytes", len(b))
	}
	return int64(binary.BigEndian.Uint64(b[:8])), nil
}

// EncodeUint32 big-endian encodes v as a 4-byte field (used for CRC32).
func EncodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// DecodeUint32 decodes a 4-byte big-endian field.
func DecodeUint32(b []byte) (uint32, liberr.Error) {
	if len(b) < 4 {
		return 0, ErrorProtocol.Errorf("short uint32 field: %d bytes", len(b))
	}
	return binary.BigEndian.Uint32(b[:4]), nil
}

// DecodePort reads a tracker-supplied storage port field. Ports disagree
// across source ports on whether this field is a 2-byte or an 8-byte
// big-endian value; when 8 bytes are available, only the last 2 are
// significant (see DESIGN.md "Open Question decisions").
func DecodePort(b []byte) (int64, liberr.Error) {
	switch {
	case len(b) >= 8:
		return int64(binary.BigEndian.Uint16(b[6:8])), nil
	case len(b) >= 2:
		return int64(binary.BigEndian.Uint16(b[0:2])), nil
	default:
		return 0, ErrorProtocol.Errorf("short port field: %d bytes", len(b))
	}
}
