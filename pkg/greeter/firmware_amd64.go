package greeter

import "github.com/costinm/efi-hello/pkg/uefi"

type firmware struct{}

// Firmware returns the Services backed by the system table the firmware
// handed to the image.
func Firmware() Services {
	return firmware{}
}

func (firmware) Init(image uefi.EFI_HANDLE, systemTable uintptr) {
	uefi.Init(image, systemTable)
}

func (firmware) ConOut() TextOutput {
	st := uefi.ST()
	if st == nil || st.ConOut == nil {
		return nil
	}
	return st.ConOut
}
