package uefi

type UINTN uintptr
type EFI_STATUS UINTN
type EFI_HANDLE uintptr

type CHAR16 uint16
type BOOLEAN bool

// EFI_TABLE_HEADER precedes all the standard EFI table types.
type EFI_TABLE_HEADER struct {
	Signature  uint64
	Revision   uint32
	HeaderSize uint32
	CRC32      uint32
	Reserved   uint32
}

func convertBoolean(b BOOLEAN) uintptr {
	if b {
		return 1
	}
	return 0
}
