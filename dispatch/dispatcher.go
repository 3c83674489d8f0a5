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
	"context"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/sabouaram/distfs/atomic"
	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/pool"
	"github.com/sabouaram/distfs/protocol"
	"github.com/sabouaram/distfs/transport"
)

// State mirrors a per-endpoint circuit breaker's state for external
// inspection; it does not affect dispatch decisions beyond what the
// breaker itself already enforces.
type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Dispatcher sends one command to one endpoint at a time, retrying
// retryable failures against a pooled connection up to retryCount times.
type Dispatcher struct {
	pool       *pool.ConnectionPool
	retryCount int
	log        *logrus.Entry

	breakers atomic.MapTyped[string, *gobreaker.CircuitBreaker[[]byte]]
}

// New returns a Dispatcher drawing connections from p and retrying up to
// retryCount times. A nil log is valid; logging is then skipped.
func New(p *pool.ConnectionPool, retryCount int, log *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		pool:       p,
		retryCount: retryCount,
		log:        log,
		breakers:   atomic.NewMapTyped[string, *gobreaker.CircuitBreaker[[]byte]](),
	}
}

// Exchange sends cmd/body to endpoint and returns the response body,
// applying the retry and non-retryable/retryable error split.
func (d *Dispatcher) Exchange(ctx context.Context, endpoint transport.Endpoint, cmd uint8, body []byte) ([]byte, liberr.Error) {
	return d.exchange(ctx, cmd, body, func() transport.Endpoint { return endpoint })
}

// ExchangeTracker is Exchange for a tracker command, except each retry
// rotates to the next endpoint sel offers instead of retrying the one
// that just failed — a tracker that is down should not be retried, the
// next configured tracker should be tried instead.
func (d *Dispatcher) ExchangeTracker(ctx context.Context, sel *TrackerSelector, cmd uint8, body []byte) ([]byte, liberr.Error) {
	return d.exchange(ctx, cmd, body, sel.Next)
}

func (d *Dispatcher) exchange(ctx context.Context, cmd uint8, body []byte, next func() transport.Endpoint) ([]byte, liberr.Error) {
	cid, _ := uuid.GenerateUUID()

	var lastErr liberr.Error

	for attempt := 0; attempt <= d.retryCount; attempt++ {
		endpoint := next()

		resp, err := d.attempt(ctx, endpoint, cmd, body)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		d.logAttempt(cid, endpoint, cmd, attempt, err)

		if !isRetryable(err) || attempt == d.retryCount {
			return nil, err
		}
	}

	return nil, lastErr
}

// EndpointState reports the current breaker state for endpoint. An
// endpoint never dispatched to is reported closed.
func (d *Dispatcher) EndpointState(endpoint transport.Endpoint) State {
	b, ok := d.breakers.Load(endpoint.String())
	if !ok {
		return StateClosed
	}

	switch b.State() {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

func (d *Dispatcher) attempt(ctx context.Context, endpoint transport.Endpoint, cmd uint8, body []byte) ([]byte, liberr.Error) {
	br := d.breakerFor(endpoint)

	resp, bErr := br.Execute(func() ([]byte, error) {
		return d.exchangeOnce(ctx, endpoint, cmd, body)
	})
	if bErr != nil {
		if le, ok := bErr.(liberr.Error); ok {
			return nil, le
		}
		return nil, ErrorBreakerOpen.Errorf("endpoint %s: %s", endpoint.String(), bErr.Error())
	}

	return resp, nil
}

func (d *Dispatcher) exchangeOnce(ctx context.Context, endpoint transport.Endpoint, cmd uint8, body []byte) ([]byte, error) {
	h, aErr := d.pool.Acquire(ctx, endpoint)
	if aErr != nil {
		return nil, aErr
	}

	header, hErr := protocol.EncodeHeader(int64(len(body)), cmd, protocol.StatusSuccess)
	if hErr != nil {
		d.pool.Release(h, true)
		return nil, hErr
	}

	if sErr := h.Connection().Send(append(header, body...)); sErr != nil {
		d.pool.Release(h, false)
		return nil, sErr
	}

	rawHeader, rErr := h.Connection().RecvExact(protocol.HeaderLen)
	if rErr != nil {
		d.pool.Release(h, false)
		return nil, rErr
	}

	respHeader, dErr := protocol.DecodeHeader(rawHeader)
	if dErr != nil {
		d.pool.Release(h, false)
		return nil, dErr
	}

	if respHeader.Status == protocol.StatusNotFound {
		d.pool.Release(h, true)
		return nil, ErrorFileNotFound.Errorf("endpoint %s: cmd %d", endpoint.String(), cmd)
	}

	if respHeader.Status != protocol.StatusSuccess {
		d.pool.Release(h, true)
		return nil, ErrorProtocol.Errorf("endpoint %s: cmd %d status %d", endpoint.String(), cmd, respHeader.Status)
	}

	respBody, bErr := h.Connection().RecvExact(int(respHeader.Length))
	if bErr != nil {
		d.pool.Release(h, false)
		return nil, bErr
	}

	d.pool.Release(h, true)

	return respBody, nil
}

func (d *Dispatcher) breakerFor(endpoint transport.Endpoint) *gobreaker.CircuitBreaker[[]byte] {
	key := endpoint.String()

	if b, ok := d.breakers.Load(key); ok {
		return b
	}

	nb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        key,
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			le, ok := err.(liberr.Error)
			return err == nil || (ok && !isRetryable(le))
		},
	})

	actual, _ := d.breakers.LoadOrStore(key, nb)

	return actual
}

func (d *Dispatcher) logAttempt(cid string, endpoint transport.Endpoint, cmd uint8, attempt int, err liberr.Error) {
	if d.log == nil {
		return
	}

	d.log.WithFields(logrus.Fields{
		"correlation_id": cid,
		"endpoint":       endpoint.String(),
		"cmd":            cmd,
		"attempt":        attempt,
	}).WithError(err).Debug("dispatch attempt failed")
}

func isRetryable(err liberr.Error) bool {
	return err.IsCode(transport.ErrorNetwork) || err.IsCode(transport.ErrorNetworkTimeout) || err.IsCode(transport.ErrorConnectionTimeout) || err.IsCode(pool.ErrorConnectionTimeout) || err.IsCode(ErrorBreakerOpen)
}
