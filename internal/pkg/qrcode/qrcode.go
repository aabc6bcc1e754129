// Package qrcode derives the opaque token printed on a ticket's QR code.
package qrcode

import (
	"crypto/subtle"
	"encoding/base32"
	"strings"
	"time"

	"github.com/zeebo/blake3"
)

// Prefix starts every ticket token
const Prefix = "TKT-"

const tokenBytes = 20

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator signs ticket contents with a keyed BLAKE3 hash
type Generator struct {
	key [32]byte
}

// NewGenerator derives the hashing key from secret. An empty secret still
// yields deterministic tokens; it just offers no forgery protection.
func NewGenerator(secret string) *Generator {
	return &Generator{key: blake3.Sum256([]byte(secret))}
}

// Token returns the QR payload for a ticket
func (g *Generator) Token(ticketID, passengerID, tripID string, purchasedAt time.Time) string {
	hasher, err := blake3.NewKeyed(g.key[:])
	if err != nil {
		// only fails for keys that are not 32 bytes
		panic("qrcode: keyed hasher: " + err.Error())
	}

	content := strings.Join([]string{
		ticketID,
		passengerID,
		tripID,
		purchasedAt.UTC().Format(time.RFC3339Nano),
	}, "|")
	_, _ = hasher.Write([]byte(content))

	sum := hasher.Sum(nil)
	return Prefix + encoding.EncodeToString(sum[:tokenBytes])
}

// Verify reports whether token was issued for these ticket contents
func (g *Generator) Verify(token, ticketID, passengerID, tripID string, purchasedAt time.Time) bool {
	expected := g.Token(ticketID, passengerID, tripID, purchasedAt)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
