package compactstr

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/foldwire/compactstr/internal/repr"
)

// FromUTF8 validates b as UTF-8 and builds a CompactString from it,
// reporting a *Utf8Error at the first invalid byte rather than the first
// invalid rune, matching unicode/utf8's own position semantics.
func FromUTF8(b []byte) (CompactString, error) {
	if i, size := firstInvalid(b); i >= 0 {
		return CompactString{}, &repr.Utf8Error{Index: i, InvalidLen: size}
	}
	r, err := repr.NewFromBytes(b)
	if err != nil {
		return CompactString{}, err
	}
	return CompactString{r: r}, nil
}

// firstInvalid scans b for the first ill-formed UTF-8 sequence, returning
// its start index and length (0 if the sequence was truncated by the end
// of b). It returns (-1, 0) if b is entirely valid UTF-8.
func firstInvalid(b []byte) (index, size int) {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if !(r == utf8.RuneError && n == 1) {
			// A legitimately-encoded U+FFFD decodes to
			// (RuneError, 3); only the 1-byte-wide RuneError is
			// DecodeRune's actual error signal.
			i += n
			continue
		}
		if !utf8.FullRune(b[i:]) {
			return i, 0
		}
		return i, 1
	}
	return -1, 0
}

// FromUTF8Lossy builds a CompactString from b, replacing every ill-formed
// subsequence with U+FFFD. It never fails.
func FromUTF8Lossy(b []byte) CompactString {
	if utf8.Valid(b) {
		return New(string(b))
	}
	var out []byte
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			out = append(out, "�"...)
			i++
			continue
		}
		out = append(out, b[i:i+n]...)
		i += n
	}
	return New(string(out))
}

// decodeUTF16 turns a slice of UTF-16 code units into UTF-8 bytes,
// reporting a *Utf16Error at the index of the first unpaired surrogate.
// If lossy is true, unpaired surrogates are replaced with U+FFFD instead
// of failing.
func decodeUTF16(units []uint16, lossy bool) ([]byte, error) {
	out := make([]byte, 0, len(units)*3)
	var buf [utf8.UTFMax]byte
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			n := utf8.EncodeRune(buf[:], rune(u))
			out = append(out, buf[:n]...)
		case u <= 0xDBFF: // high surrogate
			if i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
				r := utf16.DecodeRune(rune(u), rune(units[i+1]))
				n := utf8.EncodeRune(buf[:], r)
				out = append(out, buf[:n]...)
				i++
				continue
			}
			if !lossy {
				return nil, &repr.Utf16Error{Index: i, Reason: "unpaired high surrogate"}
			}
			out = append(out, "�"...)
		default: // lone low surrogate
			if !lossy {
				return nil, &repr.Utf16Error{Index: i, Reason: "unpaired low surrogate"}
			}
			out = append(out, "�"...)
		}
	}
	return out, nil
}

func unitsFromLE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, &repr.Utf16Error{Index: len(b) / 2, Reason: "odd byte count"}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return units, nil
}

func unitsFromBE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, &repr.Utf16Error{Index: len(b) / 2, Reason: "odd byte count"}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return units, nil
}

// FromUTF16 decodes units (host-endian code units already split out by
// the caller) into a CompactString.
func FromUTF16(units []uint16) (CompactString, error) {
	b, err := decodeUTF16(units, false)
	if err != nil {
		return CompactString{}, err
	}
	return New(string(b)), nil
}

// FromUTF16LE decodes little-endian-encoded UTF-16 bytes.
func FromUTF16LE(b []byte) (CompactString, error) {
	units, err := unitsFromLE(b)
	if err != nil {
		return CompactString{}, err
	}
	return FromUTF16(units)
}

// FromUTF16BE decodes big-endian-encoded UTF-16 bytes.
func FromUTF16BE(b []byte) (CompactString, error) {
	units, err := unitsFromBE(b)
	if err != nil {
		return CompactString{}, err
	}
	return FromUTF16(units)
}

// FromUTF16Lossy decodes units, replacing unpaired surrogates with
// U+FFFD. It never fails.
func FromUTF16Lossy(units []uint16) CompactString {
	b, _ := decodeUTF16(units, true)
	return New(string(b))
}

// ToUTF16 encodes s's contents as UTF-16 code units.
func (s *CompactString) ToUTF16() []uint16 {
	return utf16.Encode([]rune(s.String()))
}
