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

// StoreEndpoint is the body of a QueryStore tracker response: the chosen
// group and storage endpoint, plus the upload path index the storage
// server expects back on the UploadFile/UploadAppender request.
type StoreEndpoint struct {
	Group     string
	Host      string
	Port      int64
	PathIndex uint8
}

// DecodeStoreResponse decodes a QueryStore response body: group[16] ‖
// ip[16] ‖ port ‖ pathIndex:u8, where port tolerates both the 8-byte and
// 2-byte field widths handled by DecodePort.
func DecodeStoreResponse(body []byte) (StoreEndpoint, liberr.Error) {
	if len(body) < GroupNameLen+IPLen+1 {
		return StoreEndpoint{}, ErrorProtocol.Errorf("query-store response too short: %d bytes", len(body))
	}

	group := DecodeFixedString(body[0:GroupNameLen])
	ip := DecodeFixedString(body[GroupNameLen : GroupNameLen+IPLen])

	rest := body[GroupNameLen+IPLen:]
	pathIndex := rest[len(rest)-1]

	port, err := DecodePort(rest[:len(rest)-1])
	if err != nil {
		return StoreEndpoint{}, err
	}

	return StoreEndpoint{Group: group, Host: ip, Port: port, PathIndex: pathIndex}, nil
}

// FetchEndpoint is the body of a QueryFetch/QueryUpdate tracker response:
// the group owning the file and the storage endpoint to contact.
type FetchEndpoint struct {
	Group string
	Host  string
	Port  int64
}

// DecodeFetchResponse decodes a QueryFetch/QueryUpdate response body:
// group[16] ‖ ip[16] ‖ port.
func DecodeFetchResponse(body []byte) (FetchEndpoint, liberr.Error) {
	if len(body) < GroupNameLen+IPLen+2 {
		return FetchEndpoint{}, ErrorProtocol.Errorf("tracker response too short: %d bytes", len(body))
	}

	group := DecodeFixedString(body[0:GroupNameLen])
	ip := DecodeFixedString(body[GroupNameLen : GroupNameLen+IPLen])

	port, err := DecodePort(body[GroupNameLen+IPLen:])
	if err != nil {
		return FetchEndpoint{}, err
	}

	return FetchEndpoint{Group: group, Host: ip, Port: port}, nil
}
