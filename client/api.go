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
	"context"

	liberr "github.com/sabouaram/distfs/errors"
	"github.com/sabouaram/distfs/operation"
	"github.com/sabouaram/distfs/protocol"
)

// UploadFile stores data as a regular file, in group if non-empty or any
// group the tracker picks otherwise, applying meta as an opportunistic
// follow-up set-metadata call.
func (c *Client) UploadFile(ctx context.Context, group, ext string, data []byte, meta map[string]string) (string, liberr.Error) {
	if err := c.guard(); err != nil {
		return "", err
	}
	if err := validateGroup(group); err != nil {
		return "", err
	}
	if err := validateExt(ext); err != nil {
		return "", err
	}

	return operation.UploadFile(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, group, ext, data, meta)
}

// UploadAppender stores data as an appendable file.
func (c *Client) UploadAppender(ctx context.Context, group, ext string, data []byte, meta map[string]string) (string, liberr.Error) {
	if err := c.guard(); err != nil {
		return "", err
	}
	if err := validateGroup(group); err != nil {
		return "", err
	}
	if err := validateExt(ext); err != nil {
		return "", err
	}

	return operation.UploadAppender(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, group, ext, data, meta)
}

// UploadSlave stores data as a slave file of masterFileId, tagged with
// prefix, on the storage endpoint that owns the master file.
func (c *Client) UploadSlave(ctx context.Context, masterFileId, prefix, ext string, data []byte) (string, liberr.Error) {
	if err := c.guard(); err != nil {
		return "", err
	}
	if err := validateFileId(masterFileId); err != nil {
		return "", err
	}
	if err := validatePrefix(prefix); err != nil {
		return "", err
	}
	if err := validateExt(ext); err != nil {
		return "", err
	}

	return operation.UploadSlave(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, masterFileId, prefix, ext, data)
}

// Download fetches the byte range [offset, offset+length) of fileId.
// offset=0, length=0 means the entire file.
func (c *Client) Download(ctx context.Context, fileId string, offset, length int64) ([]byte, liberr.Error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if err := validateFileId(fileId); err != nil {
		return nil, err
	}
	if err := validateNonNegative("offset", offset); err != nil {
		return nil, err
	}
	if err := validateNonNegative("length", length); err != nil {
		return nil, err
	}

	return operation.Download(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId, offset, length)
}

// DeleteFile removes fileId from its storage server.
func (c *Client) DeleteFile(ctx context.Context, fileId string) liberr.Error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := validateFileId(fileId); err != nil {
		return err
	}

	return operation.DeleteFile(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId)
}

// AppendFile appends data to the end of fileId (an appender file).
func (c *Client) AppendFile(ctx context.Context, fileId string, data []byte) liberr.Error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := validateFileId(fileId); err != nil {
		return err
	}

	return operation.AppendFile(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId, data)
}

// ModifyFile overwrites fileId's content starting at offset with data.
func (c *Client) ModifyFile(ctx context.Context, fileId string, offset int64, data []byte) liberr.Error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := validateFileId(fileId); err != nil {
		return err
	}
	if err := validateNonNegative("offset", offset); err != nil {
		return err
	}

	return operation.ModifyFile(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId, offset, data)
}

// TruncateFile resizes fileId (an appender file) to newSize.
func (c *Client) TruncateFile(ctx context.Context, fileId string, newSize int64) liberr.Error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := validateFileId(fileId); err != nil {
		return err
	}
	if err := validateNonNegative("newSize", newSize); err != nil {
		return err
	}

	return operation.TruncateFile(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId, newSize)
}

// SetMetadata writes meta against fileId using flag (Overwrite or Merge).
func (c *Client) SetMetadata(ctx context.Context, fileId string, meta map[string]string, flag protocol.MetaFlag) liberr.Error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := validateFileId(fileId); err != nil {
		return err
	}

	return operation.SetMetadata(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId, meta, flag)
}

// GetMetadata reads the metadata map stored against fileId.
func (c *Client) GetMetadata(ctx context.Context, fileId string) (map[string]string, liberr.Error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if err := validateFileId(fileId); err != nil {
		return nil, err
	}

	return operation.GetMetadata(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId)
}

// GetFileInfo reads size/create-time/crc32/source-ip reported by the
// storage server for fileId.
func (c *Client) GetFileInfo(ctx context.Context, fileId string) (protocol.FileInfo, liberr.Error) {
	if err := c.guard(); err != nil {
		return protocol.FileInfo{}, err
	}
	if err := validateFileId(fileId); err != nil {
		return protocol.FileInfo{}, err
	}

	return operation.GetFileInfo(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId)
}

// FileExists reports whether fileId currently exists.
func (c *Client) FileExists(ctx context.Context, fileId string) (bool, liberr.Error) {
	if err := c.guard(); err != nil {
		return false, err
	}
	if err := validateFileId(fileId); err != nil {
		return false, err
	}

	return operation.FileExists(ctx, c.trackerDispatch, c.trackerSelector, c.storageDispatch, fileId)
}
