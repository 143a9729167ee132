package ua

import (
	"fmt"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// StatusCode is the OPC UA 32-bit result/quality code. The top two bits
// carry severity (Good/Uncertain/Bad); zero is Good.
type StatusCode uint32

const (
	severityBadFlag       = 0x80000000
	severityUncertainFlag = 0x40000000
)

// IsBad reports whether the top bit is set; a code may still have the
// uncertain bit set alongside it, and Bad takes priority.
func (v StatusCode) IsBad() bool { return uint32(v)&severityBadFlag != 0 }

// IsUncertain reports the uncertain bit, but only when IsBad is false.
func (v StatusCode) IsUncertain() bool {
	return !v.IsBad() && uint32(v)&severityUncertainFlag != 0
}

// IsGood reports that neither the bad nor the uncertain bit is set.
func (v StatusCode) IsGood() bool { return !v.IsBad() && !v.IsUncertain() }

func (v StatusCode) String() string { return fmt.Sprintf("0x%08X", uint32(v)) }

func (v *StatusCode) Init()  { *v = 0 }
func (v *StatusCode) Clear() { *v = 0 }
func (v *StatusCode) CopyTo(dst Value) error {
	d, ok := dst.(*StatusCode)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *StatusCode")
	}
	*d = *v
	return nil
}
func (v *StatusCode) CompareTo(other Value) (int, error) {
	o, ok := other.(*StatusCode)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *StatusCode")
	}
	return compareOrdered(uint64(*v), uint64(*o)), nil
}
func (v *StatusCode) Encode(w *codec.Writer) error { return w.WriteUInt32(uint32(*v)) }
func (v *StatusCode) Decode(r *codec.Reader) error {
	x, err := r.ReadUInt32()
	if err != nil {
		v.Clear()
		return err
	}
	*v = StatusCode(x)
	return nil
}

func init() {
	register(TypeStatusCode, "StatusCode", 4, func() Value { return new(StatusCode) })
}
