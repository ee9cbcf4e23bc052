// Package validate holds input validation shared across domains: the
// Ecuadorian cedula check and canonical date/time parsing.
package validate

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a validation failure. Handlers map it to 400.
var ErrInvalid = errors.New("invalid value")

// Cedula validates an Ecuadorian national id: exactly ten ASCII digits
// whose last digit satisfies the modulo-10 checksum over the first nine.
func Cedula(cedula string) error {
	if len(cedula) != 10 {
		return fmt.Errorf("%w: cedula must have exactly 10 digits", ErrInvalid)
	}
	for _, ch := range []byte(cedula) {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("%w: cedula must contain only digits", ErrInvalid)
		}
	}

	sum := 0
	for i := 0; i < 9; i++ {
		digit := int(cedula[i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit >= 10 {
				digit -= 9
			}
		}
		sum += digit
	}
	check := (10 - sum%10) % 10
	if check != int(cedula[9]-'0') {
		return fmt.Errorf("%w: cedula checksum mismatch", ErrInvalid)
	}
	return nil
}
