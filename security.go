package pdf

import "github.com/xdg-go/stringprep"

// Compressor is a collaborator that compresses stream payloads. The core
// never implements a codec itself; it only knows the name that must be
// written into a stream's /Filter entry and calls Compress to get the
// encoded bytes. Chain order matches the order filters are attached to a
// stream.
type Compressor interface {
	// Name returns the PDF filter name, e.g. "FlateDecode", "LZWDecode",
	// or "DCTDecode" for a pass-through JPEG payload.
	Name() Name

	// Compress returns the compressed form of data, or a *CompressionError
	// if compression failed.
	Compress(data []byte) ([]byte, error)
}

// Encryptor is a collaborator that encrypts string and stream payloads
// once attached to a document via [WriterOptions.Encryptor]. The core
// never implements a cipher itself.
type Encryptor interface {
	// Algorithm reports the security handler, e.g. "RC4-40", "RC4-128",
	// "AES-128", or "AES-256".
	Algorithm() string

	// Permissions returns the user-access permission bitset to encode
	// into the encryption dictionary.
	Permissions() uint32

	// EncryptString encrypts bytes belonging to the indirect object
	// identified by ref.
	EncryptString(ref Reference, data []byte) ([]byte, error)

	// EncryptStream encrypts a stream payload belonging to ref.
	EncryptStream(ref Reference, data []byte) ([]byte, error)

	// BuildEncryptDict returns the /Encrypt dictionary to write into the
	// trailer, deriving its encryption key from the already-normalized
	// user and owner passwords (see [NormalizePassword]; the Writer
	// normalizes [WriterOptions.UserPassword] and
	// [WriterOptions.OwnerPassword] before calling this). It is invoked
	// only once the rest of the document is otherwise fully determined.
	BuildEncryptDict(userPassword, ownerPassword string) (Dict, error)
}

// Signer is a collaborator that produces a detached CMS SignedData
// signature over a byte range of the serialized file, for PDF digital
// signatures. The core reserves a hex placeholder inside the signature
// dictionary's /Contents entry, computes /ByteRange once the placeholder's
// position is known, and hands the bracketed bytes to Sign.
type Signer interface {
	// PlaceholderSize returns the number of hex digits to reserve for the
	// signature. Zero selects the default (8192).
	PlaceholderSize() int

	// Sign returns the detached signature over the bracketed byte ranges,
	// as raw (unencoded) bytes; the core hex-encodes them into the
	// placeholder.
	Sign(digestInput []byte) ([]byte, error)
}

// defaultSignaturePlaceholderBytes is the number of hex digits reserved
// for a /Contents placeholder when a Signer does not specify one.
const defaultSignaturePlaceholderBytes = 8192

// NormalizePassword applies SASLprep (RFC 4013) to a user-supplied
// encryption password, the way PDF 2.0 (ISO 32000-2, 7.6.4.3.3) requires
// passwords to be prepared before they reach the AES-256 key derivation
// performed by an attached [Encryptor]. Preparing the password is
// assembly-level logic the core does, even though the cipher itself is a
// collaborator. An empty password normalizes to itself: SASLprep has
// nothing to fold case on or strip, and treating "no password" as an
// error would break the common case of a document with only an owner
// password set.
func NormalizePassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return stringprep.SASLprep.Prepare(password)
}
