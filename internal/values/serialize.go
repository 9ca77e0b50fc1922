package values

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Constant-pool tag bytes. spec.md §6.1 lists the tag set but says "exact
// byte values must be matched to the target VM version and are fixed at
// implementation time" — these are this module's fixed assignment, chosen to
// keep Int32 (the only tag spec.md pins explicitly, 0x01) and to give every
// other variant its own distinct byte rather than reusing 0x02 for
// everything, which spec.md's own table does only as a placeholder.
const (
	tagInt32     byte = 0x01
	tagBinFloat  byte = 0x02
	tagStr       byte = 0x03
	tagTrue      byte = 0x04
	tagFalse     byte = 0x05
	tagNone      byte = 0x06
	tagSmallTuple byte = 0x07
	tagTuple     byte = 0x08
	tagCode      byte = 0xE3
)

const smallTupleMax = 255

// Serialize encodes v per spec.md §6.1's byte-oriented constant-pool scheme.
// Illegal values are rejected: they are a compile-time failure marker and
// must never reach a written code object.
func Serialize(v Value) ([]byte, error) {
	var buf []byte
	return appendValue(buf, v)
}

func appendValue(buf []byte, v Value) ([]byte, error) {
	switch x := v.(type) {
	case Int32:
		buf = append(buf, tagInt32)
		return binary.LittleEndian.AppendUint32(buf, uint32(x.V)), nil
	case Float:
		buf = append(buf, tagBinFloat)
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(x.V)), nil
	case Bool:
		if x.V {
			return append(buf, tagTrue), nil
		}
		return append(buf, tagFalse), nil
	case None:
		return append(buf, tagNone), nil
	case Str:
		buf = append(buf, tagStr)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(x.V)))
		return append(buf, x.V...), nil
	case Tuple:
		var tag byte
		if len(x.Elems) <= smallTupleMax {
			tag = tagSmallTuple
			buf = append(buf, tag, byte(len(x.Elems)))
		} else {
			tag = tagTuple
			buf = append(buf, tag)
			buf = binary.LittleEndian.AppendUint32(buf, uint32(len(x.Elems)))
		}
		var err error
		for _, e := range x.Elems {
			buf, err = appendValue(buf, e)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case *Code:
		return appendCode(buf, x)
	case Illegal:
		return nil, fmt.Errorf("values: cannot serialize Illegal")
	default:
		return nil, fmt.Errorf("values: no wire encoding for %s", v.Kind())
	}
}

func appendCode(buf []byte, c *Code) ([]byte, error) {
	buf = append(buf, tagCode)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.ArgCount))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.PosOnlyArgCount))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.KwOnlyArgCount))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.StackSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.Flags))

	buf = appendLenPrefixedBytes(buf, c.Bytes)

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Consts)))
	var err error
	for _, k := range c.Consts {
		buf, err = appendValue(buf, k)
		if err != nil {
			return nil, err
		}
	}

	buf = appendStrTuple(buf, c.Names)
	buf = appendStrTuple(buf, c.VarNames)
	buf = appendStrTuple(buf, c.FreeVars)
	buf = appendStrTuple(buf, c.CellVars)

	buf = appendLenPrefixedBytes(buf, []byte(c.Filename))
	buf = appendLenPrefixedBytes(buf, []byte(c.Name))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.FirstLineNo))
	buf = appendLenPrefixedBytes(buf, c.LineTable)
	return buf, nil
}

func appendLenPrefixedBytes(buf, b []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

func appendStrTuple(buf []byte, strs []string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(strs)))
	for _, s := range strs {
		buf = appendLenPrefixedBytes(buf, []byte(s))
	}
	return buf
}

// EncodeLineTable builds the run-length-encoded (sd, ld) pair sequence
// spec.md §6.1 describes from a sequence of (byte-offset, line) samples,
// taken in increasing-offset order. (255, 0) is a byte-distance continuation
// and (0, 127) a line continuation; a sample at the same byte offset as the
// previous one (sd=0) adds its ld into the previous pair's ld in place,
// while the sum fits a signed byte, rather than appending a pair — see SPEC_FULL.md §5's
// zero-sd-extends-prior-ld rule, grounded on
// original_source/crates/erg_compiler/codegen.rs's push_lnotab.
func EncodeLineTable(samples [][2]int) []byte {
	if len(samples) == 0 {
		return nil
	}
	var out []byte
	prevOff, prevLine := 0, samples[0][1]
	for i, s := range samples {
		off, line := s[0], s[1]
		if i == 0 {
			prevOff, prevLine = off, line
			continue
		}
		sd := off - prevOff
		ld := line - prevLine
		start := len(out)
		for sd > 254 {
			out = append(out, 255, 0)
			sd -= 255
		}
		for ld > 127 {
			out = append(out, 0, 127)
			ld -= 127
		}
		for ld < -128 {
			out = append(out, 0, 0x80)
			ld += 128
		}
		if sd == 0 && len(out) >= 2 && len(out) == start {
			if merged := int(int8(out[len(out)-1])) + ld; merged >= -128 && merged <= 127 {
				out[len(out)-1] = byte(int8(merged))
				prevOff, prevLine = off, line
				continue
			}
		}
		out = append(out, byte(sd), byte(int8(ld)))
		prevOff, prevLine = off, line
	}
	return out
}
