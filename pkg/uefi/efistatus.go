package uefi

import "fmt"

const (
	uintnSize = 32 << (^uintptr(0) >> 63) // 32 or 64
	errorMask = 1 << uintptr(uintnSize-1)
)

const (
	EFI_SUCCESS              EFI_STATUS = 0
	EFI_LOAD_ERROR           EFI_STATUS = errorMask | 1
	EFI_INVALID_PARAMETER    EFI_STATUS = errorMask | 2
	EFI_UNSUPPORTED          EFI_STATUS = errorMask | 3
	EFI_BAD_BUFFER_SIZE      EFI_STATUS = errorMask | 4
	EFI_BUFFER_TOO_SMALL     EFI_STATUS = errorMask | 5
	EFI_NOT_READY            EFI_STATUS = errorMask | 6
	EFI_DEVICE_ERROR         EFI_STATUS = errorMask | 7
	EFI_WRITE_PROTECTED      EFI_STATUS = errorMask | 8
	EFI_OUT_OF_RESOURCES     EFI_STATUS = errorMask | 9
	EFI_NOT_FOUND            EFI_STATUS = errorMask | 14
	EFI_ACCESS_DENIED        EFI_STATUS = errorMask | 15
	EFI_NO_RESPONSE          EFI_STATUS = errorMask | 16
	EFI_TIMEOUT              EFI_STATUS = errorMask | 18
	EFI_NOT_STARTED          EFI_STATUS = errorMask | 19
	EFI_ALREADY_STARTED      EFI_STATUS = errorMask | 20
	EFI_ABORTED              EFI_STATUS = errorMask | 21
	EFI_INCOMPATIBLE_VERSION EFI_STATUS = errorMask | 25
	EFI_SECURITY_VIOLATION   EFI_STATUS = errorMask | 26
)

// Warning codes have the high bit clear and are not failures.
const (
	EFI_WARN_UNKNOWN_GLYPH  EFI_STATUS = 1
	EFI_WARN_DELETE_FAILURE EFI_STATUS = 2
)

// Error is the error form of a failing EFI_STATUS. Errors returned for the
// same status compare equal, so they work with errors.Is.
type Error struct {
	Status EFI_STATUS
	msg    string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

var statusErrors = map[EFI_STATUS]*Error{}

func register(status EFI_STATUS, msg string) *Error {
	e := &Error{Status: status, msg: msg}
	statusErrors[status] = e
	return e
}

var (
	ErrLoadError           = register(EFI_LOAD_ERROR, "image failed to load")
	ErrInvalidParameter    = register(EFI_INVALID_PARAMETER, "a parameter was incorrect")
	ErrUnsupported         = register(EFI_UNSUPPORTED, "operation not supported")
	ErrBadBufferSize       = register(EFI_BAD_BUFFER_SIZE, "buffer size incorrect for request")
	ErrBufferTooSmall      = register(EFI_BUFFER_TOO_SMALL, "buffer too small")
	ErrNotReady            = register(EFI_NOT_READY, "no data pending")
	ErrDeviceError         = register(EFI_DEVICE_ERROR, "physical device reported an error")
	ErrWriteProtected      = register(EFI_WRITE_PROTECTED, "device is write-protected")
	ErrOutOfResources      = register(EFI_OUT_OF_RESOURCES, "out of resources")
	ErrNotFound            = register(EFI_NOT_FOUND, "item not found")
	ErrAccessDenied        = register(EFI_ACCESS_DENIED, "access denied")
	ErrNoResponse          = register(EFI_NO_RESPONSE, "no response")
	ErrTimeout             = register(EFI_TIMEOUT, "timeout expired")
	ErrNotStarted          = register(EFI_NOT_STARTED, "protocol not started")
	ErrAlreadyStarted      = register(EFI_ALREADY_STARTED, "protocol already started")
	ErrAborted             = register(EFI_ABORTED, "operation aborted")
	ErrIncompatibleVersion = register(EFI_INCOMPATIBLE_VERSION, "requested version incompatible")
	ErrSecurityViolation   = register(EFI_SECURITY_VIOLATION, "security violation")
)

// IsError reports whether the high bit of the status is set.
func (s EFI_STATUS) IsError() bool {
	return s&errorMask != 0
}

// Err returns nil for success and warnings, and the matching *Error
// otherwise. Unknown codes get a fresh Error carrying the raw value.
func (s EFI_STATUS) Err() error {
	if !s.IsError() {
		return nil
	}
	return StatusError(s)
}

func (s EFI_STATUS) String() string {
	if s == EFI_SUCCESS {
		return "success"
	}
	if e, ok := statusErrors[s]; ok {
		return e.msg
	}
	if !s.IsError() {
		return fmt.Sprintf("warning %d", uint64(s))
	}
	return fmt.Sprintf("EFI_STATUS error %#x (%d)", uint64(s), uint64(s&^errorMask))
}

// StatusError returns the error object given by status, or nil on success.
func StatusError(status EFI_STATUS) *Error {
	if status == EFI_SUCCESS {
		return nil
	}
	if e, ok := statusErrors[status]; ok {
		return e
	}
	return &Error{Status: status, msg: status.String()}
}
