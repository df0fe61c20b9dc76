//go:build tamago && amd64

package main

import (
	"log"

	bootuefi "github.com/usbarmory/go-boot/uefi"
	"github.com/usbarmory/go-boot/uefi/x64"

	"github.com/costinm/efi-hello/pkg/greeter"
	"github.com/costinm/efi-hello/pkg/uefi"
)

func init() {
	log.SetFlags(0)
}

// Hello EFI: resets the console, prints the greeting and returns to the
// boot manager. go-boot provides the PE entry point and hands over the
// image handle and system table.
func main() {
	ah, sh := x64.UEFI.Handles()

	// always EFI_SUCCESS, passed on as exit code 0
	greeter.Run(greeter.Firmware(), uefi.EFI_HANDLE(ah), uintptr(sh))

	if err := x64.UEFI.Boot.Exit(0); err != nil {
		log.Printf("halting due to exit error, %v", err)
		x64.UEFI.Runtime.ResetSystem(bootuefi.EfiResetShutdown)
	}
}
