package uefi

import (
	"unsafe"
)

// Reset
// Reset the text output device hardware and optionally run diagnostics.
// @param  This                 Protocol instance pointer.
// @param  ExtendedVerification Driver may perform more exhaustive verification
// .............................operation of the device during reset.
// @retval EFI_SUCCESS          The text output device was reset.
// @retval EFI_DEVICE_ERROR     The text output device is not functioning
// .............................correctly and could not be reset.
func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) Reset(ExtendedVerification BOOLEAN) EFI_STATUS {
	return UefiCall2(p.reset, uintptr(unsafe.Pointer(p)), convertBoolean(ExtendedVerification))
}

// OutputString
// Write a string to the output device.
// @param  This   Protocol instance pointer.
// @param  String The null-terminated string to be displayed on the output
// ...............device(s).
// @retval EFI_SUCCESS             The string was output to the device.
// @retval EFI_DEVICE_ERROR        The device reported an error while
// ................................attempting to output the text.
// @retval EFI_UNSUPPORTED         The output device's mode is not currently
// ................................in a defined text mode.
// @retval EFI_WARN_UNKNOWN_GLYPH  This warning code indicates that some of
// ................................the characters in the string could not be
// ................................rendered and were skipped.
func (p *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL) OutputString(String *CHAR16) EFI_STATUS {
	return UefiCall2(p.outputString, uintptr(unsafe.Pointer(p)), uintptr(unsafe.Pointer(String)))
}
