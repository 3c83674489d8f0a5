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

// SetMetadata writes meta against fileId using flag (Overwrite or Merge).
func SetMetadata(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string, meta map[string]string, flag protocol.MetaFlag) liberr.Error {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryUpdate, fileId)
	if err != nil {
		return err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return gErr
	}
	body = append(body, byte(flag))
	body = append(body, protocol.EncodeMetadata(meta)...)

	_, sErr := storage.Exchange(ctx, ep, protocol.StorageSetMetadata, body)
	return sErr
}

// GetMetadata reads the metadata map stored against fileId.
func GetMetadata(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, fileId string) (map[string]string, liberr.Error) {
	group, path, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryFetch, fileId)
	if err != nil {
		return nil, err
	}

	body, gErr := groupPathBody(group, path)
	if gErr != nil {
		return nil, gErr
	}

	resp, sErr := storage.Exchange(ctx, ep, protocol.StorageGetMetadata, body)
	if sErr != nil {
		return nil, sErr
	}

	return protocol.DecodeMetadata(resp), nil
}
