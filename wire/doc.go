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

// Package wire implements arithd's length-prefixed message framing and the
// retry-on-short-transfer I/O primitives it is built on.
//
// Every frame is an 8-byte header (a big-endian uint32 padded-body length
// followed by 4 zero bytes) followed by that many bytes of body, itself
// zero-padded so the payload occupies a multiple of 8 bytes in total. The
// two directions carry a single NUL-terminated ASCII string each: a request
// expression client->server, a result or canonical error message
// server->client.
//
// The reference service this protocol is modelled on used the host's native
// byte order on send and ntohl on receive, which only happened to agree on
// the little-endian hosts it shipped on; arithd commits unconditionally to
// big-endian (network byte order) on both ends, so the wire format no longer
// silently depends on the endianness of whichever machine it is running on.
package wire
