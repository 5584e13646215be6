package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBound is returned by [Table.Bind] when the reference has
	// already been given a value.
	ErrAlreadyBound = errors.New("object already bound")

	// ErrDanglingReference is returned by [Writer.Write] when the object
	// table contains a reference to an object that was never bound.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrAlreadyFrozen is returned by mutation methods called after
	// [Writer.Write] has started serializing the document.
	ErrAlreadyFrozen = errors.New("document already frozen")

	// ErrUnbalancedStack is returned when a content stream pops more
	// graphics states than it has pushed.
	ErrUnbalancedStack = errors.New("unbalanced q/Q stack")

	// ErrTextModeViolation is returned when a path-painting operator is
	// used between BT and ET, or when text is shown outside a BT/ET
	// text object.
	ErrTextModeViolation = errors.New("operator used in the wrong text mode")

	// ErrPathState is returned when a painting operator is used without a
	// current path.
	ErrPathState = errors.New("painting operator used without a current path")

	// ErrMissingFont is returned when text is shown before a font has been
	// selected with TextSetFont.
	ErrMissingFont = errors.New("no font selected")

	errNoDate      = errors.New("not a valid date string")
	errNoRectangle = errors.New("not a valid PDF rectangle")
)

// InvalidNumberError is returned when a NaN or infinite value reaches the
// number encoder.
type InvalidNumberError struct {
	Value float64
}

func (err *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid PDF number: %v", err.Value)
}

// InvalidNameError is returned for an empty or oversize Name.
type InvalidNameError struct {
	Name string
}

func (err *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid PDF name: %q", err.Name)
}

// MalformedValueError indicates that a value could not be encoded.
type MalformedValueError struct {
	Err error
}

func (err *MalformedValueError) Error() string {
	if err.Err == nil {
		return "malformed PDF value"
	}
	return "malformed PDF value: " + err.Err.Error()
}

func (err *MalformedValueError) Unwrap() error {
	return err.Err
}

// VersionError is returned when trying to use a feature which is not
// supported by the PDF version in use.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return (err.Operation + " requires PDF version " +
		err.Earliest.String() + " or later")
}

// EncryptionError is returned when an attached [Encryptor] fails.
type EncryptionError struct {
	Err error
}

func (err *EncryptionError) Error() string {
	return "encryption failed: " + err.Err.Error()
}

func (err *EncryptionError) Unwrap() error {
	return err.Err
}

// SignatureError is returned when an attached [Signer] fails, or when the
// signature it returns does not fit the reserved /Contents placeholder.
type SignatureError struct {
	Err error
}

func (err *SignatureError) Error() string {
	return "signing failed: " + err.Err.Error()
}

func (err *SignatureError) Unwrap() error {
	return err.Err
}

// CompressionError is returned when an attached [Compressor] fails.
type CompressionError struct {
	Filter Name
	Err    error
}

func (err *CompressionError) Error() string {
	return fmt.Sprintf("compression with %s failed: %v", err.Filter, err.Err)
}

func (err *CompressionError) Unwrap() error {
	return err.Err
}
