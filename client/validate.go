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
	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/protocol"
)

func validateFileId(fileId string) liberr.Error {
	if fileId == "" {
		return ErrorInvalidArgument.Errorf("empty file id")
	}
	return nil
}

func validateExt(ext string) liberr.Error {
	if len(ext) > protocol.ExtLen {
		return ErrorInvalidArgument.Errorf("extension %q exceeds %d bytes", ext, protocol.ExtLen)
	}
	return nil
}

func validatePrefix(prefix string) liberr.Error {
	if len(prefix) > protocol.PrefixLen {
		return ErrorInvalidArgument.Errorf("prefix %q exceeds %d bytes", prefix, protocol.PrefixLen)
	}
	return nil
}

func validateGroup(group string) liberr.Error {
	if len(group) > protocol.GroupNameLen {
		return ErrorInvalidArgument.Errorf("group %q exceeds %d bytes", group, protocol.GroupNameLen)
	}
	return nil
}

func validateNonNegative(name string, v int64) liberr.Error {
	if v < 0 {
		return ErrorInvalidArgument.Errorf("%s must be >= 0", name)
	}
	return nil
}
