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

package transport

import (
	"fmt"
	"net"
	"strconv"

	liberr "github.com/sabouaram/distfs/errors"
)

// Endpoint is an immutable, copyable network address: a non-empty host
// and a port in [1, 65535].
type Endpoint struct {
	Host string
	Port int
}

// NewEndpoint validates host and port and returns an Endpoint.
func NewEndpoint(host string, port int) (Endpoint, liberr.Error) {
	if host == "" {
		return Endpoint{}, ErrorInvalidArgument.Errorf("empty endpoint host")
	}
	if port < 1 || port > 65535 {
		return Endpoint{}, ErrorInvalidArgument.Errorf("endpoint port %d out of range", port)
	}

	return Endpoint{Host: host, Port: port}, nil
}

// String renders the endpoint as "host:port".
func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// ParseEndpoint parses a "host:port" string into an Endpoint.
func ParseEndpoint(hostport string) (Endpoint, liberr.Error) {
	host, portStr, e := net.SplitHostPort(hostport)
	if e != nil {
		return Endpoint{}, ErrorInvalidArgument.Errorf("malformed endpoint %q: %s", hostport, e.Error())
	}

	port, pe := strconv.Atoi(portStr)
	if pe != nil {
		return Endpoint{}, ErrorInvalidArgument.Errorf("malformed endpoint port %q", portStr)
	}

	return NewEndpoint(host, port)
}
