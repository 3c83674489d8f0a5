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

// Tracker command codes, preserved bit-exactly for wire compatibility.
const (
	TrackerQueryStoreWithoutGroup uint8 = 101
	TrackerQueryFetch             uint8 = 102
	TrackerQueryUpdate            uint8 = 103
	TrackerQueryStoreWithGroup    uint8 = 104
	TrackerQueryFetchAll          uint8 = 105
	TrackerListOneGroup           uint8 = 90
	TrackerListAllGroups          uint8 = 91
	TrackerListStorage            uint8 = 92
)

// Storage command codes, preserved bit-exactly for wire compatibility.
const (
	StorageUpload         uint8 = 11
	StorageDelete         uint8 = 12
	StorageSetMetadata    uint8 = 13
	StorageDownload       uint8 = 14
	StorageGetMetadata    uint8 = 15
	StorageUploadSlave    uint8 = 21
	StorageQueryInfo      uint8 = 22
	StorageUploadAppender uint8 = 23
	StorageAppend         uint8 = 24
	StorageModify         uint8 = 34
	StorageTruncate       uint8 = 36
)
