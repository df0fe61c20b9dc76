package uefi

// SIMPLE_TEXT_OUTPUT_MODE
// The current mode of the output device, read only.
type SIMPLE_TEXT_OUTPUT_MODE struct {
	MaxMode       int32
	Mode          int32
	Attribute     int32
	CursorColumn  int32
	CursorRow     int32
	CursorVisible BOOLEAN
}

// EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL
// The EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL is used to control text-based output
// devices. It is the minimum required protocol for any handle supplied as
// the ConsoleOut or StandardError device.
type EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL struct {
	reset             uintptr
	outputString      uintptr
	testString        uintptr
	queryMode         uintptr
	setMode           uintptr
	setAttribute      uintptr
	clearScreen       uintptr
	setCursorPosition uintptr
	enableCursor      uintptr
	Mode              *SIMPLE_TEXT_OUTPUT_MODE
}
