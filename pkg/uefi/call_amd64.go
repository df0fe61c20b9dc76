package uefi

import "sync"

var mux sync.Mutex

// defined in call_amd64.s
func callFn(fn uint64, n int, args []uint64) (status uint64)

// callService calls an UEFI service
func callService(fn uint64, args []uint64) (status uint64) {
	mux.Lock()
	defer mux.Unlock()

	return callFn(fn, len(args), args)
}

func UefiCall2(fn uintptr, a uintptr, b uintptr) EFI_STATUS {
	return EFI_STATUS(callService(uint64(fn), []uint64{uint64(a), uint64(b)}))
}
