package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/psucert/certserve/internal/constant"
)

// GenerateCertificateNumber returns a fresh public certificate number of the
// form PSU-XXXXXXXX (uppercase hex suffix). The suffix alone is not wide
// enough to rule out collisions at volume; callers must insert under the
// unique index and retry with a new number on collision.
func GenerateCertificateNumber() (string, error) {
	suffix, err := gonanoid.Generate(constant.CERT_NUMBER_ALPHABET, constant.CERT_NUMBER_LENGTH)
	if err != nil {
		return "", err
	}

	return constant.CERT_NUMBER_PREFIX + suffix, nil
}
