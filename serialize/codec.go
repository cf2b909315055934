// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialize

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/bitmark-inc/avlmap/fault"
)

// MaximumLength - longest string or slice accepted while decoding
const MaximumLength = 1 << 30

// Codec - writes and reads one value in the wire format
//
// the byte counts returned include partial writes or reads on error
type Codec[T any] interface {
	Encode(w io.Writer, value T) (int, error)
	Decode(r io.Reader) (T, int, error)
}

// the types with a fixed little endian representation
type fixed interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

type fixedCodec[T fixed] struct{}

// codecs for the fixed width types, booleans take a single byte and
// floating point values are IEEE 754 bit patterns
var (
	Bool    Codec[bool]    = fixedCodec[bool]{}
	Byte    Codec[byte]    = fixedCodec[byte]{}
	Int8    Codec[int8]    = fixedCodec[int8]{}
	Int16   Codec[int16]   = fixedCodec[int16]{}
	Int32   Codec[int32]   = fixedCodec[int32]{}
	Int64   Codec[int64]   = fixedCodec[int64]{}
	Uint16  Codec[uint16]  = fixedCodec[uint16]{}
	Uint32  Codec[uint32]  = fixedCodec[uint32]{}
	Uint64  Codec[uint64]  = fixedCodec[uint64]{}
	Float32 Codec[float32] = fixedCodec[float32]{}
	Float64 Codec[float64] = fixedCodec[float64]{}

	// platform sized integers travel as 64 bits
	Int  Codec[int]  = intCodec{}
	Uint Codec[uint] = uintCodec{}

	// a 64 bit length followed by the bytes
	String Codec[string] = stringCodec{}
)

func (fixedCodec[T]) Encode(w io.Writer, value T) (int, error) {
	if err := binary.Write(w, binary.LittleEndian, value); nil != err {
		return 0, err
	}
	return binary.Size(value), nil
}

func (fixedCodec[T]) Decode(r io.Reader) (T, int, error) {
	var value T
	if err := binary.Read(r, binary.LittleEndian, &value); nil != err {
		return value, 0, truncated(err)
	}
	return value, binary.Size(value), nil
}

type intCodec struct{}

func (intCodec) Encode(w io.Writer, value int) (int, error) {
	return Int64.Encode(w, int64(value))
}

func (intCodec) Decode(r io.Reader) (int, int, error) {
	value, n, err := Int64.Decode(r)
	if nil != err {
		return 0, n, err
	}
	if value < math.MinInt || value > math.MaxInt {
		return 0, n, fmt.Errorf("%w: int: %d", fault.ErrValueOutOfRange, value)
	}
	return int(value), n, nil
}

type uintCodec struct{}

func (uintCodec) Encode(w io.Writer, value uint) (int, error) {
	return Uint64.Encode(w, uint64(value))
}

func (uintCodec) Decode(r io.Reader) (uint, int, error) {
	value, n, err := Uint64.Decode(r)
	if nil != err {
		return 0, n, err
	}
	if value > math.MaxUint {
		return 0, n, fmt.Errorf("%w: uint: %d", fault.ErrValueOutOfRange, value)
	}
	return uint(value), n, nil
}

type stringCodec struct{}

func (stringCodec) Encode(w io.Writer, value string) (int, error) {
	n, err := Uint64.Encode(w, uint64(len(value)))
	if nil != err {
		return n, err
	}
	m, err := io.WriteString(w, value)
	return n + m, err
}

func (stringCodec) Decode(r io.Reader) (string, int, error) {
	length, n, err := decodeLength(r)
	if nil != err {
		return "", n, err
	}
	// grow only as bytes arrive, the length is not trusted
	buffer := bytes.Buffer{}
	m, err := io.CopyN(&buffer, r, int64(length))
	if nil != err {
		return "", n + int(m), truncated(err)
	}
	return buffer.String(), n + int(m), nil
}

type sliceCodec[T any] struct {
	element Codec[T]
}

// Slice - a 64 bit element count followed by each element
func Slice[T any](element Codec[T]) Codec[[]T] {
	return sliceCodec[T]{element: element}
}

func (c sliceCodec[T]) Encode(w io.Writer, value []T) (int, error) {
	n, err := Uint64.Encode(w, uint64(len(value)))
	if nil != err {
		return n, err
	}
	for _, e := range value {
		m, err := c.element.Encode(w, e)
		n += m
		if nil != err {
			return n, err
		}
	}
	return n, nil
}

func (c sliceCodec[T]) Decode(r io.Reader) ([]T, int, error) {
	length, n, err := decodeLength(r)
	if nil != err {
		return nil, n, err
	}
	value := make([]T, 0, min(length, 1024))
	for i := 0; i < length; i += 1 {
		e, m, err := c.element.Decode(r)
		n += m
		if nil != err {
			return nil, n, err
		}
		value = append(value, e)
	}
	return value, n, nil
}

// read a length prefix and reject anything too large to allocate
func decodeLength(r io.Reader) (int, int, error) {
	length, n, err := Uint64.Decode(r)
	if nil != err {
		return 0, n, err
	}
	if length > MaximumLength {
		return 0, n, fmt.Errorf("%w: %d", fault.ErrLengthTooLarge, length)
	}
	return int(length), n, nil
}

// short input of any kind is reported as truncation
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fault.ErrTruncated
	}
	return err
}
