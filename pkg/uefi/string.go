package uefi

import (
	"unicode/utf16"
	"unsafe"
)

// StringToCHAR16 encodes s as UCS-2 and appends the null terminator
// expected by OutputString.
func StringToCHAR16(s string) []CHAR16 {
	enc := utf16.Encode([]rune(s))
	out := make([]CHAR16, len(enc)+1)
	for i, c := range enc {
		out[i] = CHAR16(c)
	}
	return out
}

// CHAR16ToString decodes b up to the first null, or the whole slice if it
// has none.
func CHAR16ToString(b []CHAR16) string {
	u := make([]uint16, 0, len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		u = append(u, uint16(c))
	}
	return string(utf16.Decode(u))
}

// CHAR16PtrToString decodes a null-terminated buffer given by its first
// element, as received by an OutputString implementation.
func CHAR16PtrToString(p *CHAR16) string {
	if p == nil {
		return ""
	}
	var u []uint16
	for ; *p != 0; p = (*CHAR16)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		u = append(u, uint16(*p))
	}
	return string(utf16.Decode(u))
}
