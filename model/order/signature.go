package order

const (
	// ExtendedSignatureLength is the byte length of an extended ECDSA
	// signature carrying an explicit recovery byte at a fixed offset.
	ExtendedSignatureLength = 65

	// CompactSignatureLength is the byte length of an EIP-2098 compact
	// signature, which folds the recovery bit into the s value.
	CompactSignatureLength = 64

	// RecoveryByteOffset is the position of the recovery parameter inside
	// an extended signature.
	RecoveryByteOffset = 64

	// Bulk signatures append a key index and a Merkle inclusion path to a
	// standard signature, so their length lies strictly between these
	// bounds and leaves a remainder below 2 when reduced per the encoding
	// (see IsBulkSignatureLength).
	bulkSignatureMinLength = 64
	bulkSignatureMaxLength = 837
)

// IsStandardSignatureLength reports whether n is a valid length for a plain
// (non-bulk) signature: extended or EIP-2098 compact.
func IsStandardSignatureLength(n int) bool {
	return n == ExtendedSignatureLength || n == CompactSignatureLength
}

// IsBulkSignatureLength reports whether n is a valid length for the
// bulk-signature encoding: strictly between 64 and 837 bytes, with
// (n - 35) mod 32 < 2 to account for the two admissible inner signature
// lengths ahead of the 32-byte path elements.
func IsBulkSignatureLength(n int) bool {
	return n > bulkSignatureMinLength &&
		n < bulkSignatureMaxLength &&
		(n-35)%32 < 2
}
