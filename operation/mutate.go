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

// DeleteFile removes fileId from its storage server.
func DeleteFile(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string) liberr.Error {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryUpdate, fileId)
	if err != nil {
		return err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return gErr
	}

	_, sErr := storage.Exchange(ctx, ep, protocol.StorageDelete, body)
	return sErr
}

// AppendFile appends data to the end of fileId (which must have been
// uploaded as an appender file).
func AppendFile(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string, data []byte) liberr.Error {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryUpdate, fileId)
	if err != nil {
		return err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return gErr
	}
	body = append(body, data...)

	_, sErr := storage.Exchange(ctx, ep, protocol.StorageAppend, body)
	return sErr
}

// ModifyFile overwrites fileId's content starting at offset with data.
func ModifyFile(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string, offset int64, data []byte) liberr.Error {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryUpdate, fileId)
	if err != nil {
		return err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return gErr
	}
	body = append(body, protocol.EncodeInt64(offset)...)
	body = append(body, data...)

	_, sErr := storage.Exchange(ctx, ep, protocol.StorageModify, body)
	return sErr
}

// TruncateFile resizes fileId (which must be an appender file) to newSize.
func TruncateFile(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string, newSize int64) liberr.Error {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryUpdate, fileId)
	if err != nil {
		return err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return gErr
	}
	body = append(body, protocol.EncodeInt64(newSize)...)

	_, sErr := storage.Exchange(ctx, ep, protocol.StorageTruncate, body)
	return sErr
}
