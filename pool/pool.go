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

package pool

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/sabouaram/distfs/atomic"
	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/transport"
)

// bucket holds the per-endpoint free list (via puddle) and the semaphore
// bounding concurrent acquires at maxConns. Unpooled mode (maxConns == 0)
// never allocates a bucket's puddle/semaphore pair.
type bucket struct {
	endpoint transport.Endpoint
	sem      *semaphore.Weighted
	pp       *puddle.Pool[*transport.Connection]
}

func newBucket(ep transport.Endpoint, maxConns int, connectTimeout, networkTimeout time.Duration, log *logrus.Entry) (*bucket, liberr.Error) {
	b := &bucket{endpoint: ep}

	if maxConns <= 0 {
		return b, nil
	}

	b.sem = semaphore.NewWeighted(int64(maxConns))

	pp, err := puddle.NewPool(&puddle.Config[*transport.Connection]{
		Constructor: func(ctx context.Context) (*transport.Connection, error) {
			c := transport.New(ep, connectTimeout, networkTimeout)
			if cErr := c.Connect(ctx); cErr != nil {
				logPoolEvent(log, ep, "connect failed", cErr)
				return nil, cErr
			}
			logPoolEvent(log, ep, "connected", nil)
			return c, nil
		},
		Destructor: func(c *transport.Connection) {
			_ = c.Close()
		},
		MaxSize: int32(maxConns),
	})
	if err != nil {
		return nil, ErrorInvalidArgument.Errorf("endpoint %s: %s", ep.String(), err.Error())
	}

	b.pp = pp

	return b, nil
}

func (b *bucket) stats() (free, inUse int) {
	if b.pp == nil {
		return 0, 0
	}

	st := b.pp.Stat()

	return st.IdleResources(), st.AcquiredResources()
}

func (b *bucket) closeAll() {
	if b.pp != nil {
		b.pp.Close()
	}
}

// Handle is an acquired connection, returned by ConnectionPool.Acquire. It
// must be passed back to Release exactly once.
type Handle struct {
	conn *transport.Connection
	res  *puddle.Resource[*transport.Connection]
	sem  *semaphore.Weighted
}

// Connection returns the underlying transport connection.
func (h *Handle) Connection() *transport.Connection {
	return h.conn
}

// ConnectionPool manages per-endpoint connection reuse for a set of tracker
// or storage endpoints. See NewTrackerPool and NewStoragePool.
type ConnectionPool struct {
	static bool

	maxConns       int
	connectTimeout time.Duration
	networkTimeout time.Duration
	idleTimeout    time.Duration
	log            *logrus.Entry

	mu     sync.RWMutex
	closed bool

	buckets atomic.MapTyped[string, *bucket]
}

// NewTrackerPool builds a pool over a fixed, pre-validated endpoint set.
// Acquiring a connection for any other endpoint fails with InvalidArgument.
// A nil log is valid; logging is then skipped.
func NewTrackerPool(endpoints []transport.Endpoint, maxConns int, connectTimeout, networkTimeout, idleTimeout time.Duration, log *logrus.Entry) (*ConnectionPool, liberr.Error) {
	if len(endpoints) == 0 {
		return nil, ErrorInvalidArgument.Errorf("tracker pool requires at least one endpoint")
	}

	p := newPool(true, maxConns, connectTimeout, networkTimeout, idleTimeout, log)

	for _, ep := range endpoints {
		b, err := newBucket(ep, maxConns, connectTimeout, networkTimeout, log)
		if err != nil {
			return nil, err
		}
		p.buckets.Store(ep.String(), b)
	}

	return p, nil
}

// NewStoragePool builds a pool that lazily creates a bucket the first time
// an endpoint is acquired; any endpoint is accepted. A nil log is valid;
// logging is then skipped.
func NewStoragePool(maxConns int, connectTimeout, networkTimeout, idleTimeout time.Duration, log *logrus.Entry) *ConnectionPool {
	return newPool(false, maxConns, connectTimeout, networkTimeout, idleTimeout, log)
}

func newPool(static bool, maxConns int, connectTimeout, networkTimeout, idleTimeout time.Duration, log *logrus.Entry) *ConnectionPool {
	return &ConnectionPool{
		static:         static,
		maxConns:       maxConns,
		connectTimeout: connectTimeout,
		networkTimeout: networkTimeout,
		idleTimeout:    idleTimeout,
		log:            log,
		buckets:        atomic.NewMapTyped[string, *bucket](),
	}
}

// logPoolEvent emits a debug-level entry for a connection lifecycle event
// at endpoint. A nil log is a no-op, matching dispatch.Dispatcher's own
// optional-logging convention.
func logPoolEvent(log *logrus.Entry, ep transport.Endpoint, event string, err liberr.Error) {
	if log == nil {
		return
	}

	e := log.WithFields(logrus.Fields{
		"endpoint": ep.String(),
		"event":    event,
	})
	if err != nil {
		e = e.WithError(err)
	}
	e.Debug("pool: " + event)
}

func (p *ConnectionPool) bucketFor(ep transport.Endpoint) (*bucket, liberr.Error) {
	key := ep.String()

	if b, ok := p.buckets.Load(key); ok {
		return b, nil
	}

	if p.static {
		return nil, ErrorInvalidArgument.Errorf("endpoint %s is not part of this pool", ep.String())
	}

	nb, err := newBucket(ep, p.maxConns, p.connectTimeout, p.networkTimeout, p.log)
	if err != nil {
		return nil, err
	}

	actual, loaded := p.buckets.LoadOrStore(key, nb)
	if loaded {
		nb.closeAll()
	}

	return actual, nil
}

// Acquire returns a connection to endpoint, dialing a new one if the free
// list is empty and the endpoint is under its in-use cap, or waiting a
// bounded amount of time (connectTimeout) if the endpoint is saturated.
func (p *ConnectionPool) Acquire(ctx context.Context, ep transport.Endpoint) (*Handle, liberr.Error) {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()

	if closed {
		return nil, ErrorClientClosed.Errorf("pool is closed")
	}

	b, err := p.bucketFor(ep)
	if err != nil {
		return nil, err
	}

	if p.maxConns <= 0 {
		c := transport.New(ep, p.connectTimeout, p.networkTimeout)
		if cErr := c.Connect(ctx); cErr != nil {
			return nil, cErr
		}
		return &Handle{conn: c}, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	if sErr := b.sem.Acquire(waitCtx, 1); sErr != nil {
		return nil, ErrorConnectionTimeout.Errorf("endpoint %s: saturated", ep.String())
	}

	for {
		p.mu.RLock()
		closed = p.closed
		p.mu.RUnlock()

		if closed {
			b.sem.Release(1)
			return nil, ErrorClientClosed.Errorf("pool is closed")
		}

		res, rErr := b.pp.Acquire(waitCtx)
		if rErr != nil {
			b.sem.Release(1)
			return nil, ErrorConnectionTimeout.Errorf("endpoint %s: %s", ep.String(), rErr.Error())
		}

		c := res.Value()
		if !c.IsHealthy() || time.Since(c.LastUsed()) > p.idleTimeout {
			logPoolEvent(p.log, ep, "evicted", nil)
			res.Destroy()
			continue
		}

		return &Handle{conn: c, res: res, sem: b.sem}, nil
	}
}

// Release returns a connection to its pool. healthy should reflect whether
// the caller's exchange succeeded; an unhealthy or idle-expired connection
// is closed instead of recycled.
func (p *ConnectionPool) Release(h *Handle, healthy bool) {
	if h == nil {
		return
	}

	if h.res == nil {
		_ = h.conn.Close()
		return
	}

	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()

	if closed || !healthy || !h.conn.IsHealthy() || time.Since(h.conn.LastUsed()) > p.idleTimeout {
		h.res.Destroy()
	} else {
		h.res.Release()
	}

	h.sem.Release(1)
}

// Stats reports the free and in-use connection counts for endpoint.
func (p *ConnectionPool) Stats(ep transport.Endpoint) (free, inUse int) {
	b, ok := p.buckets.Load(ep.String())
	if !ok {
		return 0, 0
	}

	return b.stats()
}

// Close idempotently marks the pool closed and destroys every free and
// in-use connection. In-use connections close as they are released.
func (p *ConnectionPool) Close() liberr.Error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.buckets.Range(func(_ string, b *bucket) bool {
		b.closeAll()
		return true
	})

	if p.log != nil {
		p.log.Debug("pool: closed")
	}

	return nil
}
