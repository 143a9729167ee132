package ua

import (
	"time"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// opcUAEpoch is 1601-01-01 UTC, the zero point DateTime ticks count from.
var opcUAEpoch = time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)

// DateTime is a signed 64-bit count of 100-ns ticks since the OPC UA epoch.
// Zero represents the minimum DateTime.
type DateTime int64

// NewDateTime converts a time.Time to a DateTime, truncating to 100ns ticks.
func NewDateTime(t time.Time) DateTime {
	secs := t.Unix() - opcUAEpoch.Unix()
	return DateTime(secs*10_000_000 + int64(t.Nanosecond())/100)
}

// Time converts the DateTime back to a time.Time.
func (v DateTime) Time() time.Time {
	ticks := int64(v)
	return time.Unix(opcUAEpoch.Unix()+ticks/10_000_000, (ticks%10_000_000)*100).UTC()
}

func (v *DateTime) Init()  { *v = 0 }
func (v *DateTime) Clear() { *v = 0 }
func (v *DateTime) CopyTo(dst Value) error {
	d, ok := dst.(*DateTime)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *DateTime")
	}
	*d = *v
	return nil
}
func (v *DateTime) CompareTo(other Value) (int, error) {
	o, ok := other.(*DateTime)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *DateTime")
	}
	return compareOrdered(int64(*v), int64(*o)), nil
}
func (v *DateTime) Encode(w *codec.Writer) error { return w.WriteInt64(int64(*v)) }
func (v *DateTime) Decode(r *codec.Reader) error {
	x, err := r.ReadInt64()
	if err != nil {
		v.Clear()
		return err
	}
	*v = DateTime(x)
	return nil
}

func init() {
	register(TypeDateTime, "DateTime", 8, func() Value { return new(DateTime) })
}
