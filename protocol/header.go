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

	liberr "github.com/sabouaram/distfs/errors"
)

// HeaderLen is the fixed size, in bytes, of every wire frame header.
const HeaderLen = 10

// StatusSuccess, StatusNotFound and any other value follow the tracker/
// storage status convention: 0 success, 2 not-found, anything else is a
// protocol-level error reported by the server.
const (
	StatusSuccess  uint8 = 0
	StatusNotFound uint8 = 2
)

// Header is the 10-byte prefix of every request and response frame:
// [ length:int64-BE | cmd:uint8 | status:uint8 ].
type Header struct {
	Length int64
	Cmd    uint8
	Status uint8
}

// EncodeHeader serialises length, cmd and status into a 10-byte frame
// header. It fails with ErrorProtocol if length is negative.
func EncodeHeader(length int64, cmd, status uint8) ([]byte, liberr.Error) {
	if length < 0 {
		return nil, ErrorProtocol.Errorf("negative body length %d", length)
	}

	b := make([]byte, HeaderLen)
	binary.BigEndian.PutUint64(b[0:8], uint64(length))
	b[8] = cmd
	b[9] = status

	return b, nil
}

// DecodeHeader parses a 10-byte frame header. It fails with ErrorProtocol
// if the input is shorter than HeaderLen.
func DecodeHeader(b []byte) (Header, liberr.Error) {
	if len(b) < HeaderLen {
		return Header{}, ErrorProtocol.Errorf("short header: %d bytes", len(b))
	}

	return Header{
		Length: int64(binary.BigEndian.Uint64(b[0:8])),
		Cmd:    b[8],
		Status: b[9],
	}, nil
}
