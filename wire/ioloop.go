/*
 * MIT License
 *
 * Copyright (c) 2026 arithd contributors
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

package wire

import (
	"io"
)

// FullRead reads exactly len(buf) bytes from r, reissuing the underlying
// Read on every short return, the way the original service retried recv(2)
// on EINTR/EAGAIN. Go's io.Reader never surfaces EINTR as a distinct error
// (the runtime already retries interrupted syscalls beneath net.Conn), so
// the only two cases this loop has to handle are the ordinary "fewer bytes
// than asked for" short read and end of stream.
//
// A clean end of stream with zero bytes read so far returns io.EOF (the
// peer closed before sending anything — not a framing error). A stream that
// ends partway through buf returns io.ErrUnexpectedEOF, which the frame
// reader maps to ErrFraming. Any other error from r is returned unchanged.
func FullRead(r io.Reader, buf []byte) error {
	read := 0
	for read < len(buf) {
		n, err := r.Read(buf[read:])
		read += n
		if err != nil {
			if err == io.EOF {
				if read == 0 {
					return io.EOF
				}
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// FullWrite writes exactly len(buf) bytes to w, reissuing Write on every
// short write. It mirrors send_data's retry loop, treating a zero-progress
// write as the one truly unrecoverable condition (a writer that can never
// make progress would otherwise spin this loop forever).
func FullWrite(w io.Writer, buf []byte) error {
	written := 0
	for written < len(buf) {
		n, err := w.Write(buf[written:])
		written += n
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrShortWrite
		}
	}
	return nil
}
