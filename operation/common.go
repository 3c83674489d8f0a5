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
	"github.com/sabouaram/distfs/transport"
)

// resolveViaTracker splits fileId, asks the tracker pool (via cmd, either
// QueryFetch or QueryUpdate) which storage endpoint owns it, and resolves
// that endpoint to a dialable transport.Endpoint.
func resolveViaTracker(ctx context.Context, trackers *dispatch.Dispatcher, sel *dispatch.TrackerSelector, cmd uint8, fileId string) (group, path string, ep transport.Endpoint, err liberr.Error) {
	group, path, err = protocol.SplitFileId(fileId)
	if err != nil {
		return "", "", transport.Endpoint{}, err
	}

	groupBytes, gErr := protocol.EncodeFixedString(group, protocol.GroupNameLen)
	if gErr != nil {
		return "", "", transport.Endpoint{}, gErr
	}

	body := append(append([]byte{}, groupBytes...), path...)

	resp, xErr := trackers.ExchangeTracker(ctx, sel, cmd, body)
	if xErr != nil {
		return "", "", transport.Endpoint{}, xErr
	}

	fe, dErr := protocol.DecodeFetchResponse(resp)
	if dErr != nil {
		return "", "", transport.Endpoint{}, dErr
	}

	_, resolved, rErr := resolveStoreEndpoint(fe.Group, fe.Host, fe.Port)
	if rErr != nil {
		return "", "", transport.Endpoint{}, rErr
	}

	return group, path, resolved, nil
}

func groupPathBody(group, path string) ([]byte, liberr.Error) {
	groupBytes, err := protocol.EncodeFixedString(group, protocol.GroupNameLen)
	if err != nil {
		return nil, err
	}

	return append(groupBytes, path...), nil
}
