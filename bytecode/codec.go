package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode appends op and its fixed-width little-endian operand (if any)
// to buf and returns the result, mirroring the original codec's
// byte-for-byte layout: a one-byte tag followed by the operand.
func Encode(buf []byte, op Operation, numberArg float64, stringArg Symbol, boolArg bool) []byte {
	buf = append(buf, byte(op))
	switch op {
	case LoadNumber:
		var bits [8]byte
		binary.LittleEndian.PutUint64(bits[:], math.Float64bits(numberArg))
		buf = append(buf, bits[:]...)
	case LoadString:
		var bits [4]byte
		binary.LittleEndian.PutUint32(bits[:], uint32(stringArg))
		buf = append(buf, bits[:]...)
	case LoadBool:
		if boolArg {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return buf
}

// DecoderErrorKind discriminates why Decode failed.
type DecoderErrorKind int

const (
	InvalidBool DecoderErrorKind = iota
	NoEnoughData
)

// DecoderError reports a decode failure at byte offset Pos.
type DecoderError struct {
	Pos      int
	Kind     DecoderErrorKind
	Byte     byte
	Expected int
	Rem      int
}

func (e *DecoderError) Error() string {
	switch e.Kind {
	case InvalidBool:
		return fmt.Sprintf("%d: invalid bool value %#b", e.Pos, e.Byte)
	default:
		return fmt.Sprintf("%d: no enough data, expected %d byte(s), remaining %d byte(s)", e.Pos, e.Expected, e.Rem)
	}
}

// Decoded is one decoded instruction plus the byte length it consumed.
type Decoded struct {
	Op        Operation
	NumberArg float64
	StringArg Symbol
	BoolArg   bool
	Size      int
}

// Decode reads a single instruction starting at buf[0].
func Decode(buf []byte) (Decoded, error) {
	if len(buf) < 1 {
		return Decoded{}, &DecoderError{Pos: 0, Kind: NoEnoughData, Expected: 1, Rem: len(buf)}
	}
	op := Operation(buf[0])
	rest := buf[1:]

	switch op {
	case LoadNumber:
		if len(rest) < 8 {
			return Decoded{}, &DecoderError{Pos: 1, Kind: NoEnoughData, Expected: 8, Rem: len(rest)}
		}
		bits := binary.LittleEndian.Uint64(rest[:8])
		return Decoded{Op: op, NumberArg: math.Float64frombits(bits), Size: 9}, nil

	case LoadString:
		if len(rest) < 4 {
			return Decoded{}, &DecoderError{Pos: 1, Kind: NoEnoughData, Expected: 4, Rem: len(rest)}
		}
		sym := Symbol(binary.LittleEndian.Uint32(rest[:4]))
		return Decoded{Op: op, StringArg: sym, Size: 5}, nil

	case LoadBool:
		if len(rest) < 1 {
			return Decoded{}, &DecoderError{Pos: 1, Kind: NoEnoughData, Expected: 1, Rem: len(rest)}
		}
		switch rest[0] {
		case 0:
			return Decoded{Op: op, BoolArg: false, Size: 2}, nil
		case 1:
			return Decoded{Op: op, BoolArg: true, Size: 2}, nil
		default:
			return Decoded{}, &DecoderError{Pos: 1, Kind: InvalidBool, Byte: rest[0]}
		}

	default:
		return Decoded{Op: op, Size: 1}, nil
	}
}
