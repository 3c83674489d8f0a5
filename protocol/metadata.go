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

import "strings"

// Field and record separators for the metadata block wire encoding.
const (
	FieldSeparator  byte = 0x02
	RecordSeparator byte = 0x01

	// MetaKeyMax and MetaValueMax bound a single metadata entry. Longer
	// keys/values are silently truncated on encode (spec's adopted
	// resolution of the cross-port truncate-vs-reject disagreement).
	MetaKeyMax   = 64
	MetaValueMax = 256
)

// MetaFlag selects the semantics of a setMetadata call.
type MetaFlag byte

const (
	MetaOverwrite MetaFlag = 'O'
	MetaMerge     MetaFlag = 'M'
)

// EncodeMetadata concatenates key<FS>value<RS> records. Keys/values
// longer than their maxima are truncated silently.
func EncodeMetadata(m map[string]string) []byte {
	var b strings.Builder

	for k, v := range m {
		if len(k) > MetaKeyMax {
			k = k[:MetaKeyMax]
		}
		if len(v) > MetaValueMax {
			v = v[:MetaValueMax]
		}

		b.WriteString(k)
		b.WriteByte(FieldSeparator)
		b.WriteString(v)
		b.WriteByte(RecordSeparator)
	}

	return []byte(b.String())
}

// DecodeMetadata parses a metadata block. Records without exactly one
// field separator are skipped; an unterminated trailing record (missing
// its record separator) is still accepted.
func DecodeMetadata(b []byte) map[string]string {
	m := make(map[string]string)

	records := strings.Split(string(b), string(RecordSeparator))
	for _, r := range records {
		if r == "" {
			continue
		}

		parts := strings.Split(r, string(FieldSeparator))
		if len(parts) != 2 {
			continue
		}

		m[parts[0]] = parts[1]
	}

	return m
}
