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

package dispatch

import (
	"sync"

	"github.com/sabouaram/distfs/transport"
)

// TrackerSelector round-robins over a fixed set of tracker endpoints.
type TrackerSelector struct {
	mu        sync.Mutex
	endpoints []transport.Endpoint
	next      int
}

// NewTrackerSelector returns a TrackerSelector over endpoints. endpoints
// must be non-empty.
func NewTrackerSelector(endpoints []transport.Endpoint) *TrackerSelector {
	cp := make([]transport.Endpoint, len(endpoints))
	copy(cp, endpoints)

	return &TrackerSelector{endpoints: cp}
}

// Next returns the next endpoint in round-robin order.
func (s *TrackerSelector) Next() transport.Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep := s.endpoints[s.next%len(s.endpoints)]
	s.next++

	return ep
}
