// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package pgpath

// AppendBounded appends src to the NUL-terminated content of dst without
// writing past capacity bytes, truncating src when the room runs out. The
// buffer stays NUL-terminated whenever capacity is positive and there is
// room for the terminator.
//
// The return value is the length the combined string would occupy without
// truncation (existing content plus all of src, terminator excluded), so
// callers detect truncation by comparing it against capacity.
func AppendBounded(dst []byte, src string, capacity int) int {
	if capacity > len(dst) {
		capacity = len(dst)
	}

	dlen := 0
	for dlen < capacity && dst[dlen] != 0 {
		dlen++
	}

	room := capacity - dlen
	if room == 0 {
		return dlen + len(src)
	}

	n := min(len(src), room-1)
	copy(dst[dlen:], src[:n])
	dst[dlen+n] = 0

	return dlen + len(src)
}

// CString returns the string content of a NUL-terminated buffer. A buffer
// without a terminator is returned whole.
func CString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
