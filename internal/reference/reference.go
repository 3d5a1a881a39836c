// Package reference issues the short public identifiers printed on
// labels and shared with customers: tracking numbers and booking
// references. The generator is collision-unaware; uniqueness is
// enforced by database constraints and callers regenerate on a
// duplicate-key error.
package reference

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/dumo-express/internal/constants"
)

// Upper-case alphanumerics only: identifiers are read out over the
// phone and typed from paper, so no lower case and no symbols.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New returns prefix followed by randomLength characters drawn from
// the upper-case alphanumeric alphabet.
func New(prefix string, randomLength int) string {
	var b strings.Builder
	b.Grow(len(prefix) + randomLength)
	b.WriteString(strings.ToUpper(prefix))
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < randomLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken; nothing sensible to return at that point.
			panic(err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String()
}

// TrackingNumber returns a fresh parcel tracking number (DE + 10).
func TrackingNumber() string {
	return New(constants.TrackingNumberPrefix, constants.TrackingNumberRandom)
}

// BookingRef returns a fresh booking reference (DES + 8).
func BookingRef() string {
	return New(constants.BookingRefPrefix, constants.BookingRefRandom)
}
