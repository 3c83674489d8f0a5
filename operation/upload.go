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

func uploadTo(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, storageCmd uint8, group, ext string, data []byte, meta map[string]string) (string, liberr.Error) {
	trackerCmd := protocol.TrackerQueryStoreWithoutGroup

	var trackerBody []byte
	if group != "" {
		trackerCmd = protocol.TrackerQueryStoreWithGroup

		groupBytes, gErr := protocol.EncodeFixedString(group, protocol.GroupNameLen)
		if gErr != nil {
			return "", gErr
		}
		trackerBody = groupBytes
	}

	resp, xErr := trackers.ExchangeTracker(ctx, sel, trackerCmd, trackerBody)
	if xErr != nil {
		return "", xErr
	}

	se, dErr := protocol.DecodeStoreResponse(resp)
	if dErr != nil {
		return "", dErr
	}

	_, ep, rErr := resolveStoreEndpoint(se.Group, se.Host, se.Port)
	if rErr != nil {
		return "", rErr
	}

	extBytes, eErr := protocol.EncodeFixedString(ext, protocol.ExtLen)
	if eErr != nil {
		return "", eErr
	}

	body := append([]byte{se.PathIndex}, extBytes...)
	body = append(body, data...)

	storageResp, sErr := storage.Exchange(ctx, ep, storageCmd, body)
	if sErr != nil {
		return "", sErr
	}

	fileId := protocol.JoinFileId(se.Group, string(storageResp))

	if len(meta) > 0 {
		_ = SetMetadata(ctx, trackers, sel, storage, fileId, meta, protocol.MetaOverwrite)
	}

	return fileId, nil
}

// UploadFile stores data as a regular file in group (or any group the
// tracker picks, if group is empty), applying meta (if non-empty) as an
// opportunistic follow-up that does not invalidate the upload on failure.
func UploadFile(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, group, ext string, data []byte, meta map[string]string) (string, liberr.Error) {
	return uploadTo(ctx, trackers, sel, storage, protocol.StorageUpload, group, ext, data, meta)
}

// UploadAppender stores data as an appendable file.
func UploadAppender(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, group, ext string, data []byte, meta map[string]string) (string, liberr.Error) {
	return uploadTo(ctx, trackers, sel, storage, protocol.StorageUploadAppender, group, ext, data, meta)
}

// UploadSlave stores data as a slave file of masterFileId, tagged with
// prefix, on the same storage endpoint that owns the master file.
func UploadSlave(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, storage *dispatch.Dispatcher, masterFileId, prefix, ext string, data []byte) (string, liberr.Error) {
	group, masterPath, ep, err := resolveViaTracker(ctx, trackers, sel, protocol.TrackerQueryFetch, masterFileId)
	if err != nil {
		return "", err
	}

	prefixBytes, pErr := protocol.EncodeFixedString(prefix, protocol.PrefixLen)
	if pErr != nil {
		return "", pErr
	}

	extBytes, eErr := protocol.EncodeFixedString(ext, protocol.ExtLen)
	if eErr != nil {
		return "", eErr
	}

	masterPathBytes, mErr := protocol.EncodeFixedString(masterPath, protocol.MasterPathLen)
	if mErr != nil {
		return "", mErr
	}

	body := append(append([]byte{}, prefixBytes...), extBytes...)
	body = append(body, masterPathBytes...)
	body = append(body, data...)

	resp, sErr := storage.Exchange(ctx, ep, protocol.StorageUploadSlave, body)
	if sErr != nil {
		return "", sErr
	}

	return protocol.JoinFileId(group, string(resp)), nil
}
