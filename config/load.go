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
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	liberr "github.com/sabouaram/distfs/errors"
)

// LoadFile reads path, dispatching on its extension (.toml/.tml,
// .yaml/.yml, .cbor/.cb) and decoding into a Config seeded with
// Default(). It validates the result before returning it.
func LoadFile(path string) (*Config, liberr.Error) {
	raw, rErr := os.ReadFile(path)
	if rErr != nil {
		return nil, ErrorFileRead.Errorf("%s: %s", path, rErr.Error())
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, ErrorDecode.Errorf("%s: %s", path, err.Error())
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, ErrorDecode.Errorf("%s: %s", path, err.Error())
		}
	case ".cbor", ".cb":
		if err := cbor.Unmarshal(raw, &cfg); err != nil {
			return nil, ErrorDecode.Errorf("%s: %s", path, err.Error())
		}
	default:
		return nil, ErrorUnsupportedFormat.Errorf("%s: unrecognized extension", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadMap decodes an arbitrary map (e.g. from a parsed env, flag set, or
// a caller's own config tree) into a Config seeded with Default(), using
// the "mapstructure" struct tags shared with JSON/YAML/TOML.
func LoadMap(m map[string]interface{}) (*Config, liberr.Error) {
	cfg := Default()

	if err := mapstructure.Decode(m, &cfg); err != nil {
		return nil, ErrorDecode.Errorf("%s", err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveFile writes cfg to path in the format implied by its extension.
func SaveFile(path string, cfg *Config) liberr.Error {
	var (
		raw []byte
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		raw, err = toml.Marshal(*cfg)
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(*cfg)
	case ".cbor", ".cb":
		raw, err = cbor.Marshal(*cfg)
	default:
		return ErrorUnsupportedFormat.Errorf("%s: unrecognized extension", path)
	}

	if err != nil {
		return ErrorDecode.Errorf("%s: %s", path, err.Error())
	}

	if wErr := os.WriteFile(path, raw, 0o600); wErr != nil {
		return ErrorFileWrite.Errorf("%s: %s", path, wErr.Error())
	}

	return nil
}
