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

package operation

import (
	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/transport"
)

// DefaultStoragePort is used whenever a tracker response carries a zero
// port, matching the fallback preserved from the original storage-server
// port default.
const DefaultStoragePort int = 23000

func resolveStoreEndpoint(group, host string, port int64) (string, transport.Endpoint, liberr.Error) {
	if host == "" {
		return "", transport.Endpoint{}, ErrorNoStorageServer.Errorf("tracker returned no storage endpoint for group %q", group)
	}

	p := int(port)
	if p == 0 {
		p = DefaultStoragePort
	}

	ep, err := transport.NewEndpoint(host, p)
	if err != nil {
		return "", transport.Endpoint{}, err
	}

	return group, ep, nil
}
