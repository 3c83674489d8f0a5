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

import liberr "github.com/sabouaram/distfs/errors"

// FileInfo is the body of a QueryFileInfo storage response.
type FileInfo struct {
	Size       int64
	CreateTime int64
	Crc32      uint32
	SourceIP   string
}

const fileInfoLen = 8 + 8 + 4 + IPLen

// EncodeFileInfo lays out size:i64 ‖ createTime:i64 ‖ crc32:u32 ‖
// sourceIp[16], matching DecodeFileInfo.
func EncodeFileInfo(fi FileInfo) ([]byte, liberr.Error) {
	b := make([]byte, 0, fileInfoLen)

	b = append(b, EncodeInt64(fi.Size)...)
	b = append(b, EncodeInt64(fi.CreateTime)...)
	b = append(b, EncodeUint32(fi.Crc32)...)

	ip, err := EncodeFixedString(fi.SourceIP, IPLen)
	if err != nil {
		return nil, err
	}
	b = append(b, ip...)

	return b, nil
}

// DecodeFileInfo decodes a QueryFileInfo response body.
func DecodeFileInfo(body []byte) (FileInfo, liberr.Error) {
	if len(body) < fileInfoLen {
		return FileInfo{}, ErrorProtocol.Errorf("file info response too short: %d bytes", len(body))
	}

	size, err := DecodeInt64(body[0:8])
	if err != nil {
		return FileInfo{}, err
	}

	created, err := DecodeInt64(body[8:16])
	if err != nil {
		return FileInfo{}, err
	}

	crc, err := DecodeUint32(body[16:20])
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Size:       size,
		CreateTime: created,
		Crc32:      crc,
		SourceIP:   DecodeFixedString(body[20:fileInfoLen]),
	}, nil
}
