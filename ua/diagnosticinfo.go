package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

const (
	diagSymbolicIdFlag     byte = 0x01
	diagNamespaceUriFlag   byte = 0x02
	diagLocalizedTextFlag  byte = 0x04
	diagLocaleFlag         byte = 0x08
	diagAdditionalInfoFlag byte = 0x10
	diagInnerStatusFlag    byte = 0x20
	diagInnerDiagFlag      byte = 0x40
)

// DiagnosticInfo carries extended error detail as indices into a
// separately transmitted string table, plus an optional chained
// DiagnosticInfo for the next service in a call stack. Nesting depth is
// capped by the codec's diagnostic-info nesting limit, independent of
// struct nesting.
type DiagnosticInfo struct {
	SymbolicId          Int32
	hasSymbolicId       bool
	NamespaceUri        Int32
	hasNamespaceUri     bool
	LocalizedText       Int32
	hasLocalizedText    bool
	Locale              Int32
	hasLocale           bool
	AdditionalInfo      String
	hasAdditionalInfo   bool
	InnerStatusCode     StatusCode
	hasInnerStatus      bool
	InnerDiagnosticInfo *DiagnosticInfo
}

func (v *DiagnosticInfo) SetSymbolicId(x int32)   { v.SymbolicId, v.hasSymbolicId = Int32(x), true }
func (v *DiagnosticInfo) SetNamespaceUri(x int32) { v.NamespaceUri, v.hasNamespaceUri = Int32(x), true }
func (v *DiagnosticInfo) SetLocalizedText(x int32) {
	v.LocalizedText, v.hasLocalizedText = Int32(x), true
}
func (v *DiagnosticInfo) SetLocale(x int32) { v.Locale, v.hasLocale = Int32(x), true }
func (v *DiagnosticInfo) SetAdditionalInfo(s string) {
	v.AdditionalInfo, v.hasAdditionalInfo = NewString(s), true
}
func (v *DiagnosticInfo) SetInnerStatusCode(s StatusCode) {
	v.InnerStatusCode, v.hasInnerStatus = s, true
}

func (v *DiagnosticInfo) Init()  { *v = DiagnosticInfo{} }
func (v *DiagnosticInfo) Clear() { *v = DiagnosticInfo{} }

func (v *DiagnosticInfo) CopyTo(dst Value) error {
	d, ok := dst.(*DiagnosticInfo)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *DiagnosticInfo")
	}
	*d = *v
	if err := v.AdditionalInfo.CopyTo(&d.AdditionalInfo); err != nil {
		return err
	}
	if v.InnerDiagnosticInfo != nil {
		inner := new(DiagnosticInfo)
		if err := v.InnerDiagnosticInfo.CopyTo(inner); err != nil {
			return err
		}
		d.InnerDiagnosticInfo = inner
	} else {
		d.InnerDiagnosticInfo = nil
	}
	return nil
}

// CompareTo orders lexicographically by (SymbolicId, NamespaceUri,
// LocalizedText, Locale, AdditionalInfo, InnerStatusCode,
// InnerDiagnosticInfo), recursing into the inner chain, per spec §4.1. An
// absent field compares as less than any present value of the same field;
// a nil inner chain sorts before a present one.
func (v *DiagnosticInfo) CompareTo(other Value) (int, error) {
	o, ok := other.(*DiagnosticInfo)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *DiagnosticInfo")
	}
	if c := compareBool(v.hasSymbolicId, o.hasSymbolicId); c != 0 {
		return c, nil
	}
	if v.hasSymbolicId {
		if c := compareOrdered(int64(v.SymbolicId), int64(o.SymbolicId)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasNamespaceUri, o.hasNamespaceUri); c != 0 {
		return c, nil
	}
	if v.hasNamespaceUri {
		if c := compareOrdered(int64(v.NamespaceUri), int64(o.NamespaceUri)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasLocalizedText, o.hasLocalizedText); c != 0 {
		return c, nil
	}
	if v.hasLocalizedText {
		if c := compareOrdered(int64(v.LocalizedText), int64(o.LocalizedText)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasLocale, o.hasLocale); c != 0 {
		return c, nil
	}
	if v.hasLocale {
		if c := compareOrdered(int64(v.Locale), int64(o.Locale)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasAdditionalInfo, o.hasAdditionalInfo); c != 0 {
		return c, nil
	}
	if v.hasAdditionalInfo {
		if c := v.AdditionalInfo.compare(&o.AdditionalInfo.byteSequence); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasInnerStatus, o.hasInnerStatus); c != 0 {
		return c, nil
	}
	if v.hasInnerStatus {
		if c := compareOrdered(uint64(v.InnerStatusCode), uint64(o.InnerStatusCode)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.InnerDiagnosticInfo != nil, o.InnerDiagnosticInfo != nil); c != 0 {
		return c, nil
	}
	if v.InnerDiagnosticInfo != nil {
		return v.InnerDiagnosticInfo.CompareTo(o.InnerDiagnosticInfo)
	}
	return 0, nil
}

func (v *DiagnosticInfo) mask() byte {
	var m byte
	if v.hasSymbolicId {
		m |= diagSymbolicIdFlag
	}
	if v.hasNamespaceUri {
		m |= diagNamespaceUriFlag
	}
	if v.hasLocalizedText {
		m |= diagLocalizedTextFlag
	}
	if v.hasLocale {
		m |= diagLocaleFlag
	}
	if v.hasAdditionalInfo {
		m |= diagAdditionalInfoFlag
	}
	if v.hasInnerStatus {
		m |= diagInnerStatusFlag
	}
	if v.InnerDiagnosticInfo != nil {
		m |= diagInnerDiagFlag
	}
	return m
}

func (v *DiagnosticInfo) Encode(w *codec.Writer) error {
	m := v.mask()
	if err := w.WriteByte(m); err != nil {
		return err
	}
	if m&diagSymbolicIdFlag != 0 {
		if err := v.SymbolicId.Encode(w); err != nil {
			return err
		}
	}
	if m&diagNamespaceUriFlag != 0 {
		if err := v.NamespaceUri.Encode(w); err != nil {
			return err
		}
	}
	if m&diagLocalizedTextFlag != 0 {
		if err := v.LocalizedText.Encode(w); err != nil {
			return err
		}
	}
	if m&diagLocaleFlag != 0 {
		if err := v.Locale.Encode(w); err != nil {
			return err
		}
	}
	if m&diagAdditionalInfoFlag != 0 {
		if err := v.AdditionalInfo.Encode(w); err != nil {
			return err
		}
	}
	if m&diagInnerStatusFlag != 0 {
		if err := v.InnerStatusCode.Encode(w); err != nil {
			return err
		}
	}
	if m&diagInnerDiagFlag != 0 {
		if err := w.EnterDiag(); err != nil {
			return err
		}
		err := v.InnerDiagnosticInfo.Encode(w)
		w.LeaveDiag()
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *DiagnosticInfo) Decode(r *codec.Reader) error {
	m, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	*v = DiagnosticInfo{}
	if m&diagSymbolicIdFlag != 0 {
		if err := v.SymbolicId.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasSymbolicId = true
	}
	if m&diagNamespaceUriFlag != 0 {
		if err := v.NamespaceUri.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasNamespaceUri = true
	}
	if m&diagLocalizedTextFlag != 0 {
		if err := v.LocalizedText.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasLocalizedText = true
	}
	if m&diagLocaleFlag != 0 {
		if err := v.Locale.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasLocale = true
	}
	if m&diagAdditionalInfoFlag != 0 {
		if err := v.AdditionalInfo.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasAdditionalInfo = true
	}
	if m&diagInnerStatusFlag != 0 {
		if err := v.InnerStatusCode.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasInnerStatus = true
	}
	if m&diagInnerDiagFlag != 0 {
		if err := r.EnterDiag(); err != nil {
			v.Clear()
			return err
		}
		inner := new(DiagnosticInfo)
		err := inner.Decode(r)
		r.LeaveDiag()
		if err != nil {
			v.Clear()
			return err
		}
		v.InnerDiagnosticInfo = inner
	}
	return nil
}

func init() {
	register(TypeDiagnosticInfo, "DiagnosticInfo", 64, func() Value { return new(DiagnosticInfo) })
}
