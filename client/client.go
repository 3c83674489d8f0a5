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

package client

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sabouaram/distfs/config"
	"github.com/sabouaram/distfs/dispatch"
	liberr "github.com/sabouaram/distfs/errors"
	errpool "github.com/sabouaram/distfs/errors/pool"
	"github.com/sabouaram/distfs/pool"
	"github.com/sabouaram/distfs/transport"
)

// Client is the distfs facade: a validated config, a pooled/dispatched
// connection to the tracker tier and a pooled/dispatched connection to
// the storage tier. A zero Client is not usable; build one with New.
type Client struct {
	cfg config.Config
	log *logrus.Entry

	trackerEndpoints []transport.Endpoint
	trackerSelector  *dispatch.TrackerSelector
	trackerPool      *pool.ConnectionPool
	trackerDispatch  *dispatch.Dispatcher

	storagePool     *pool.ConnectionPool
	storageDispatch *dispatch.Dispatcher

	mu     sync.RWMutex
	closed bool
}

// New validates cfg, dials no connections yet, and returns an opened
// Client. log may be nil, in which case dispatch logging is skipped.
func New(cfg config.Config, log *logrus.Entry) (*Client, liberr.Error) {
	if err := cfg.Validate(); err != nil {
		return nil, ErrorInvalidConfig.Errorf("%s", err.Error())
	}

	endpoints := make([]transport.Endpoint, 0, len(cfg.TrackerAddrs))
	for _, addr := range cfg.TrackerAddrs {
		ep, err := transport.ParseEndpoint(addr)
		if err != nil {
			return nil, ErrorInvalidConfig.Errorf("tracker address %q: %s", addr, err.Error())
		}
		endpoints = append(endpoints, ep)
	}

	trackerPool, err := pool.NewTrackerPool(endpoints, cfg.MaxConns, cfg.ConnectTimeout.Time(), cfg.NetworkTimeout.Time(), cfg.IdleTimeout.Time(), log)
	if err != nil {
		return nil, err
	}

	storagePool := pool.NewStoragePool(cfg.MaxConns, cfg.ConnectTimeout.Time(), cfg.NetworkTimeout.Time(), cfg.IdleTimeout.Time(), log)

	c := &Client{
		cfg:              cfg,
		log:              log,
		trackerEndpoints: endpoints,
		trackerSelector:  dispatch.NewTrackerSelector(endpoints),
		trackerPool:      trackerPool,
		trackerDispatch:  dispatch.New(trackerPool, cfg.RetryCount, log),
		storagePool:      storagePool,
		storageDispatch:  dispatch.New(storagePool, cfg.RetryCount, log),
	}

	return c, nil
}

// Close idempotently closes both connection pools. Exchanges already in
// flight complete or fail on their own; no new ones are accepted after
// Close returns. If both pools fail to close, both errors are reported
// via an errors/pool collection rather than dropping the first one.
func (c *Client) Close() liberr.Error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	errs := errpool.New()
	errs.Add(c.trackerPool.Close())
	errs.Add(c.storagePool.Close())

	if combined := errs.Error(); combined != nil {
		return ErrorClientClosed.Errorf("%s", combined.Error())
	}
	return nil
}

// guard returns ErrorClientClosed once Close has been called, and is the
// first check every public method makes.
func (c *Client) guard() liberr.Error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrorClientClosed.Errorf("client is closed")
	}

	return nil
}
