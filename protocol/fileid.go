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

package protocol

import (
	"strings"

	liberr "github.com/sabouaram/distfs/errors"
)

// SplitFileId splits a canonical "<group>/<remote-path>" string into its
// group and path parts. It fails with ErrorInvalidArgument if there is no
// '/', the group is empty or longer than GroupNameLen, or the path is
// empty.
func SplitFileId(id string) (group string, path string, err liberr.Error) {
	i := strings.IndexByte(id, '/')
	if i < 0 {
		return "", "", ErrorInvalidArgument.Errorf("file id %q has no group separator", id)
	}

	group = id[:i]
	path = id[i+1:]

	if group == "" {
		return "", "", ErrorInvalidArgument.Errorf("file id %q has an empty group", id)
	}
	if len(group) > GroupNameLen {
		return "", "", ErrorInvalidArgument.Errorf("file id %q group exceeds %d bytes", id, GroupNameLen)
	}
	if path == "" {
		return "", "", ErrorInvalidArgument.Errorf("file id %q has an empty path", id)
	}

	return group, path, nil
}

// JoinFileId is the inverse of SplitFileId.
func JoinFileId(group, path string) string {
	return group + "/" + path
}
