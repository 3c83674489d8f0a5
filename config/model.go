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

package config

import (
	libval "github.com/go-playground/validator/v10"

	libdur "github.com/sabouaram/distfs/duration"
	liberr "github.com/sabouaram/distfs/errors"
)

// Config is the client's configuration surface: tracker addresses, pool
// sizing and timeouts, and retry policy.
type Config struct {
	// TrackerAddrs lists "host:port" tracker endpoints, tried round-robin
	// with failover.
	TrackerAddrs []string `json:"trackerAddrs" yaml:"trackerAddrs" toml:"trackerAddrs" mapstructure:"trackerAddrs" validate:"required,min=1,dive,required"`

	// MaxConns bounds concurrent connections per endpoint. 0 disables
	// pooling: every exchange dials and closes its own connection.
	MaxConns int `json:"maxConns" yaml:"maxConns" toml:"maxConns" mapstructure:"maxConns" validate:"gte=0"`

	// ConnectTimeout bounds dialing a new connection and waiting on a
	// saturated pool bucket. Accepts days notation (e.g. "1d12h") in
	// JSON, YAML, TOML and CBOR configuration sources.
	ConnectTimeout libdur.Duration `json:"connectTimeout" yaml:"connectTimeout" toml:"connectTimeout" mapstructure:"connectTimeout" validate:"gte=0"`

	// NetworkTimeout bounds a single read or write on an established
	// connection.
	NetworkTimeout libdur.Duration `json:"networkTimeout" yaml:"networkTimeout" toml:"networkTimeout" mapstructure:"networkTimeout" validate:"gte=0"`

	// IdleTimeout evicts a pooled connection that has sat unused longer
	// than this.
	IdleTimeout libdur.Duration `json:"idleTimeout" yaml:"idleTimeout" toml:"idleTimeout" mapstructure:"idleTimeout" validate:"gte=0"`

	// RetryCount bounds the number of retries the dispatcher attempts
	// against a retryable failure, beyond the first try.
	RetryCount int `json:"retryCount" yaml:"retryCount" toml:"retryCount" mapstructure:"retryCount" validate:"gte=0"`
}

// Default returns a Config with the client's documented defaults:
// MaxConns=10, ConnectTimeout=5s, NetworkTimeout=30s, IdleTimeout=60s,
// RetryCount=3. TrackerAddrs is left empty; the caller must set it.
func Default() Config {
	return Config{
		MaxConns:       10,
		ConnectTimeout: libdur.Seconds(5),
		NetworkTimeout: libdur.Seconds(30),
		IdleTimeout:    libdur.Seconds(60),
		RetryCount:     3,
	}
}

// Validate checks the struct tags above and fails with ErrorValidation
// describing the first offending field.
func (c *Config) Validate() liberr.Error {
	if err := libval.New().Struct(c); err != nil {
		if ve, ok := err.(libval.ValidationErrors); ok && len(ve) > 0 {
			return ErrorValidation.Errorf("field '%s' failed constraint '%s'", ve[0].Namespace(), ve[0].ActualTag())
		}
		return ErrorValidation.Errorf("%s", err.Error())
	}

	return nil
}

// Merge overlays the non-zero fields of o onto c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}

	if len(o.TrackerAddrs) > 0 {
		c.TrackerAddrs = append([]string{}, o.TrackerAddrs...)
	}
	if o.MaxConns != 0 {
		c.MaxConns = o.MaxConns
	}
	if o.ConnectTimeout != 0 {
		c.ConnectTimeout = o.ConnectTimeout
	}
	if o.NetworkTimeout != 0 {
		c.NetworkTimeout = o.NetworkTimeout
	}
	if o.IdleTimeout != 0 {
		c.IdleTimeout = o.IdleTimeout
	}
	if o.RetryCount != 0 {
		c.RetryCount = o.RetryCount
	}
}
