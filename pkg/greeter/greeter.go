// Package greeter prints a fixed greeting on the UEFI console output device
// and reports success to the boot manager.
package greeter

import (
	"go.uber.org/multierr"

	"github.com/costinm/efi-hello/pkg/uefi"
)

// Greeting is written to the active console on entry.
const Greeting = "Hello UEFI\r\n"

// greeting holds Greeting without its terminator; writes take their length
// from the slice.
var greeting = func() []uefi.CHAR16 {
	s := uefi.StringToCHAR16(Greeting)
	return s[:len(s)-1]
}()

// TextOutput is the part of EFI_SIMPLE_TEXT_OUTPUT_PROTOCOL the greeter
// drives.
type TextOutput interface {
	Reset(extendedVerification uefi.BOOLEAN) uefi.EFI_STATUS
	// OutputString writes a null-terminated buffer.
	OutputString(s *uefi.CHAR16) uefi.EFI_STATUS
}

// Services is the firmware runtime library.
type Services interface {
	// Init binds the library to the image handle and system table passed
	// to the entry point. Nothing else is valid before it.
	Init(image uefi.EFI_HANDLE, systemTable uintptr)
	// ConOut returns the active console output, nil if there is none.
	ConOut() TextOutput
}

// Report holds the statuses the firmware returned during a greeting.
type Report struct {
	// Reset is the console reset status, EFI_SUCCESS if no reset was made.
	Reset  uefi.EFI_STATUS
	Writes []uefi.EFI_STATUS
}

// Err combines every failing status. Warnings are not failures.
func (r Report) Err() error {
	err := r.Reset.Err()
	for _, s := range r.Writes {
		err = multierr.Append(err, s.Err())
	}
	return err
}

type Greeter struct {
	bulk bool
}

type Option func(*Greeter)

// WithBulkWrite sends the whole greeting in a single OutputString call
// instead of one call per character.
func WithBulkWrite() Option {
	return func(g *Greeter) {
		g.bulk = true
	}
}

func New(opts ...Option) *Greeter {
	g := &Greeter{}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Greet binds svc to the entry context, resets the console and writes the
// greeting. Nothing is checked on the way: every call is made regardless
// of what the previous one returned.
func (g *Greeter) Greet(svc Services, image uefi.EFI_HANDLE, systemTable uintptr) Report {
	var r Report
	if svc == nil {
		return r
	}

	svc.Init(image, systemTable)
	out := svc.ConOut()
	if out == nil {
		return r
	}

	r.Reset = out.Reset(false)

	if g.bulk {
		buf := make([]uefi.CHAR16, len(greeting)+1)
		copy(buf, greeting)
		r.Writes = append(r.Writes, out.OutputString(&buf[0]))
		return r
	}

	r.Writes = make([]uefi.EFI_STATUS, 0, len(greeting))
	for _, c := range greeting {
		buf := [2]uefi.CHAR16{c, 0}
		r.Writes = append(r.Writes, out.OutputString(&buf[0]))
	}
	return r
}

// Run is the application entry sequence. The firmware statuses are
// dropped and EFI_SUCCESS is always returned.
func (g *Greeter) Run(svc Services, image uefi.EFI_HANDLE, systemTable uintptr) uefi.EFI_STATUS {
	_ = g.Greet(svc, image, systemTable)
	return uefi.EFI_SUCCESS
}

// Run greets with the default per-character writes.
func Run(svc Services, image uefi.EFI_HANDLE, systemTable uintptr) uefi.EFI_STATUS {
	return New().Run(svc, image, systemTable)
}
