// Package buffer implements the binary encoding primitives of the module's
// codecs: fixed size words and length-prefixed byte strings, written to and
// read from buffered writers and readers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that expose their internal
// buffers, such as bufio.Writer and Buffer. Values are encoded
// directly into AvailableBuffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for buffered readers, such as bufio.Reader and Buffer.
type Reader interface {
	io.Reader
	io.ByteReader
}

// Buffer is a []byte-based Writer and Reader of fixed capacity.
// Writes beyond capacity return an error, reads beyond the written
// bytes return io.EOF.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBuffer creates a new Buffer reading from buff. Writes start at buff[0]
// and overwrite its content.
func NewBuffer(buff []byte) *Buffer {
	return &Buffer{buf: buff}
}

// NewBufferSize creates a new empty Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write writes p into b. It returns an error if p does not fit in the
// remaining capacity.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.n > cap(b.buf) {
		return 0, fmt.Errorf("buffer too small")
	}
	// copy is a no-op when p was obtained from AvailableBuffer
	n = copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice with b.Available() capacity
// to be appended to and passed to Write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.n:][:0]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Read reads len(p) bytes into p and returns io.EOF if fewer are left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadByte reads the next byte.
func (b *Buffer) ReadByte() (c byte, err error) {
	if b.off == len(b.buf) {
		return 0, io.EOF
	}
	c = b.buf[b.off]
	b.off++
	return
}
