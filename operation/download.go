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

package operation

import (
	"context"

	"github.com/sabouaram/distfs/dispatch"
	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/protocol"
)

// Download fetches the byte range [offset, offset+length) of fileId.
// offset=0, length=0 means the entire file; an empty response body is a
// valid result for an empty file.
func Download(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string, offset, length int64) ([]byte, liberr.Error) {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryFetch, fileId)
	if err != nil {
		return nil, err
	}

	gp, gErr := groupPathBody(group, path)
	if gErr != nil {
		return nil, gErr
	}

	body := append(protocol.EncodeInt64(offset), protocol.EncodeInt64(length)...)
	body = append(body, gp...)

	return storage.Exchange(ctx, ep, protocol.StorageDownload, body)
}
