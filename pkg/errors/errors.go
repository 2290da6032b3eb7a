package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a typed error carrying the failure kind for the key pipeline.
// Every fallible operation in the library returns one of these; no error kind
// is retryable.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Kind discriminates the failure classes of the key pipeline.
type Kind string

const (
	// KindMissingRSAParams indicates the RSA modulus and/or exponent is absent,
	// either because the public key failed to parse or a required builder field
	// was never set.
	KindMissingRSAParams Kind = "MissingRsaParams"
	// KindMissingECParams indicates the EC curve, x and/or y is absent.
	KindMissingECParams Kind = "MissingEcParams"
	// KindMissingECX indicates a parsed EC point has no x coordinate.
	KindMissingECX Kind = "MissingEcX"
	// KindMissingECY indicates a parsed EC point has no y coordinate.
	KindMissingECY Kind = "MissingEcY"
	// KindUnsupportedKeyType indicates a kty value outside RSA/EC.
	KindUnsupportedKeyType Kind = "UnsupportedKeyType"
	// KindKeyGenerationFailed indicates key generation or its PEM encoding failed.
	KindKeyGenerationFailed Kind = "KeyGenerationFailed"
	// KindPEMRead indicates PEM data could not be read from a file or input.
	KindPEMRead Kind = "PemReadError"
	// KindPEMWrite indicates PEM data could not be written to a file.
	KindPEMWrite Kind = "PemWriteError"
	// KindRSAParse indicates an RSA public key could not be parsed from PEM.
	KindRSAParse Kind = "RsaParseError"
	// KindECParse indicates an EC public key could not be parsed from PEM.
	KindECParse Kind = "EcParseError"
	// KindBase64Encoding indicates a base64url encode/decode failure.
	KindBase64Encoding Kind = "Base64EncodingError"
	// KindUnsupportedCurve indicates an EC key on a curve other than P-256.
	KindUnsupportedCurve Kind = "UnsupportedCurve"
)

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new typed error
func New(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether err (or any error it wraps) is a typed error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or the empty string if err is not a typed
// error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Helper constructors for common error kinds

// NewMissingRSAParams creates a MissingRsaParams error
func NewMissingRSAParams(err error) *Error {
	return New(KindMissingRSAParams, "missing required RSA parameters 'n' (modulus) and/or 'e' (exponent)", err)
}

// NewMissingECParams creates a MissingEcParams error
func NewMissingECParams(err error) *Error {
	return New(KindMissingECParams, "missing required EC parameters 'crv' (curve), 'x' and/or 'y' (coordinates)", err)
}

// NewMissingECX creates a MissingEcX error
func NewMissingECX() *Error {
	return New(KindMissingECX, "missing EC coordinate 'x'", nil)
}

// NewMissingECY creates a MissingEcY error
func NewMissingECY() *Error {
	return New(KindMissingECY, "missing EC coordinate 'y'", nil)
}

// NewUnsupportedKeyType creates an UnsupportedKeyType error carrying the
// offending kty value.
func NewUnsupportedKeyType(keyType string) *Error {
	return New(KindUnsupportedKeyType, fmt.Sprintf("unsupported key type %q, only 'RSA' and 'EC' are supported", keyType), nil)
}

// NewKeyGenerationFailed creates a KeyGenerationFailed error
func NewKeyGenerationFailed(err error) *Error {
	return New(KindKeyGenerationFailed, "key generation failed", err)
}

// NewPEMRead creates a PemReadError
func NewPEMRead(path string, err error) *Error {
	return New(KindPEMRead, fmt.Sprintf("failed to read PEM data from %s", path), err)
}

// NewPEMWrite creates a PemWriteError
func NewPEMWrite(path string, err error) *Error {
	return New(KindPEMWrite, fmt.Sprintf("failed to write PEM data to %s", path), err)
}

// NewRSAParse creates an RsaParseError
func NewRSAParse(err error) *Error {
	return New(KindRSAParse, "failed to parse RSA public key from PEM", err)
}

// NewECParse creates an EcParseError
func NewECParse(err error) *Error {
	return New(KindECParse, "failed to parse EC public key from PEM", err)
}

// NewBase64Encoding creates a Base64EncodingError
func NewBase64Encoding(field string, err error) *Error {
	return New(KindBase64Encoding, fmt.Sprintf("failed to decode base64url field %q", field), err)
}

// NewUnsupportedCurve creates an UnsupportedCurve error carrying the curve name.
func NewUnsupportedCurve(curve string) *Error {
	return New(KindUnsupportedCurve, fmt.Sprintf("invalid or unsupported curve type %q, only P-256 is supported", curve), nil)
}
