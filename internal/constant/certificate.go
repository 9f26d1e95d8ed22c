package constant

// Certificate numbers are public identifiers of the form PSU-XXXXXXXX where
// X is uppercase hex. The shape is relied on by external consumers (printed
// certificates, verification URLs) and must not change.
const (
	CERT_NUMBER_PREFIX   = "PSU-"
	CERT_NUMBER_ALPHABET = "0123456789ABCDEF"
	CERT_NUMBER_LENGTH   = 8

	// Retry budget when an insert hits a certificate_number collision.
	CERT_NUMBER_MAX_ATTEMPTS = 5
)
