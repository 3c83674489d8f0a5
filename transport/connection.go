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
	"context"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	liberr "github.com/sabouaram/distfs/errors"
)

// Connection is one TCP stream to one Endpoint. It is created and owned by
// a connection pool; callers never dial it directly.
type Connection struct {
	endpoint Endpoint

	connectTimeout time.Duration
	networkTimeout time.Duration

	mu   sync.Mutex
	conn net.Conn

	lastUsed atomic.Int64 // unix nanoseconds
	healthy  atomic.Bool
}

// New returns an unconnected Connection for endpoint. Call Connect before
// Send/RecvExact.
func New(endpoint Endpoint, connectTimeout, networkTimeout time.Duration) *Connection {
	c := &Connection{
		endpoint:       endpoint,
		connectTimeout: connectTimeout,
		networkTimeout: networkTimeout,
	}
	c.healthy.Store(true)
	c.touch()

	return c
}

// Endpoint returns the endpoint this connection is bound to.
func (c *Connection) Endpoint() Endpoint {
	return c.endpoint
}

// Connect resolves the endpoint (the numeric fast path is tried first,
// DNS resolution is the fallback handled internally by net.Dialer) and
// establishes the TCP stream within connectTimeout, applying keepalive
// tuning on the dialed socket.
func (c *Connection) Connect(ctx context.Context) liberr.Error {
	d := net.Dialer{Timeout: c.connectTimeout}

	conn, err := d.DialContext(ctx, "tcp", c.endpoint.String())
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return ErrorConnectionTimeout.Errorf("dial %s: %s", c.endpoint.String(), err.Error())
		}
		return ErrorNetwork.Errorf("dial %s: %s", c.endpoint.String(), err.Error())
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetKeepAlive(true)
		_ = tc.SetKeepAlivePeriod(30 * time.Second)
		tuneKeepAlive(tc)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.touch()

	return nil
}

// Send writes every byte of b to the connection or fails; short writes
// are retried internally until complete or an error/deadline triggers.
func (c *Connection) Send(b []byte) liberr.Error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.latch()
		return ErrorNetwork.Errorf("send on unconnected transport to %s", c.endpoint.String())
	}

	if !c.IsHealthy() {
		return ErrorNetwork.Errorf("send on unhealthy transport to %s", c.endpoint.String())
	}

	if e := conn.SetWriteDeadline(time.Now().Add(c.networkTimeout)); e != nil {
		c.latch()
		return ErrorNetwork.Errorf("set write deadline: %s", e.Error())
	}

	written := 0
	for written < len(b) {
		n, err := conn.Write(b[written:])
		written += n

		if err != nil {
			c.latch()
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return ErrorNetworkTimeout.Errorf("write to %s: %s", c.endpoint.String(), err.Error())
			}
			return ErrorNetwork.Errorf("write to %s: %s", c.endpoint.String(), err.Error())
		}
	}

	c.touch()

	return nil
}

// RecvExact reads exactly n bytes or fails; EOF before n bytes is a
// Network failure.
func (c *Connection) RecvExact(n int) ([]byte, liberr.Error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.latch()
		return nil, ErrorNetwork.Errorf("recv on unconnected transport to %s", c.endpoint.String())
	}

	if !c.IsHealthy() {
		return nil, ErrorNetwork.Errorf("recv on unhealthy transport to %s", c.endpoint.String())
	}

	if e := conn.SetReadDeadline(time.Now().Add(c.networkTimeout)); e != nil {
		c.latch()
		return nil, ErrorNetwork.Errorf("set read deadline: %s", e.Error())
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(conn, b); err != nil {
		c.latch()

		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, ErrorNetworkTimeout.Errorf("read from %s: %s", c.endpoint.String(), err.Error())
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrorNetwork.Errorf("read from %s: connection closed: %s", c.endpoint.String(), err.Error())
		}
		return nil, ErrorNetwork.Errorf("read from %s: %s", c.endpoint.String(), err.Error())
	}

	c.touch()

	return b, nil
}

// Close closes the underlying socket. Idempotent.
func (c *Connection) Close() liberr.Error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	if err := conn.Close(); err != nil {
		return ErrorNetwork.Errorf("close %s: %s", c.endpoint.String(), err.Error())
	}

	return nil
}

// LastUsed returns the timestamp of the last successful I/O operation (or
// of construction, if none has occurred yet).
func (c *Connection) LastUsed() time.Time {
	return time.Unix(0, c.lastUsed.Load())
}

// IsHealthy reports the connection's monotonic health latch: once an I/O
// failure has been observed it never becomes healthy again.
func (c *Connection) IsHealthy() bool {
	return c.healthy.Load()
}

func (c *Connection) touch() {
	c.lastUsed.Store(time.Now().UnixNano())
}

func (c *Connection) latch() {
	c.healthy.Store(false)
}
