package ntruencrypt

import "fmt"

// Kind enumerates the library-level error kinds from spec.md section 7.
type Kind int

const (
	// InvalidArgument covers message-too-long, maxMsgLenBytes>255, a
	// rejected arith3 trit pair, or parameter inconsistency.
	InvalidArgument Kind = iota
	// InvalidCiphertext covers a dm0 balance violation, non-zero padding
	// after the message, or a failed blinding-polynomial consistency check.
	InvalidCiphertext
	// IOError covers a short read on a stream-form decoder.
	IOError
	// CryptoUnavailable covers a missing hash or RNG primitive.
	CryptoUnavailable
	// KeygenFailure is surfaced after the keygen retry cap is exceeded.
	KeygenFailure
	// EncryptFailure is surfaced after the encrypt dm0-balance retry cap is
	// exceeded.
	EncryptFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidCiphertext:
		return "InvalidCiphertext"
	case IOError:
		return "IOError"
	case CryptoUnavailable:
		return "CryptoUnavailable"
	case KeygenFailure:
		return "KeygenFailure"
	case EncryptFailure:
		return "EncryptFailure"
	default:
		return "Unknown"
	}
}

// Error is the single caller-visible error type, carrying a Kind and a
// human-readable reason; inner routines signal failure via absent-value
// returns so retry loops never see an error at all (spec.md section 7/9).
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ntruencrypt: %s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("ntruencrypt: %s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, reason string) error {
	return &Error{Kind: kind, Reason: reason}
}

func wrapErr(kind Kind, reason string, err error) error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}
