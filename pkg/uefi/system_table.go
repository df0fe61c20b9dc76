package uefi

import "unsafe"

// EFI_SYSTEM_TABLE
// Contains pointers to the runtime and boot services tables and the
// console protocols bound by the firmware. Only the console output
// protocol is typed, the other services are kept as raw addresses.
type EFI_SYSTEM_TABLE struct {
	Hdr                  EFI_TABLE_HEADER
	FirmwareVendor       *CHAR16
	FirmwareRevision     uint32
	ConsoleInHandle      EFI_HANDLE
	ConIn                uintptr
	ConsoleOutHandle     EFI_HANDLE
	ConOut               *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL
	StandardErrorHandle  EFI_HANDLE
	StdErr               *EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL
	RuntimeServices      uintptr
	BootServices         uintptr
	NumberOfTableEntries UINTN
	ConfigurationTable   uintptr
}

var (
	imageHandle EFI_HANDLE
	systemTable *EFI_SYSTEM_TABLE
)

// Init binds the library to the handles the firmware passed to the image
// entry point. It must run before ST or any protocol call. A zero system
// table leaves the library unbound and ST returns nil.
func Init(image EFI_HANDLE, st uintptr) {
	imageHandle = image
	if st == 0 {
		systemTable = nil
		return
	}
	systemTable = (*EFI_SYSTEM_TABLE)(unsafe.Pointer(st))
}

// ST returns the system table set by Init.
func ST() *EFI_SYSTEM_TABLE {
	return systemTable
}

func GetImageHandle() EFI_HANDLE {
	return imageHandle
}
