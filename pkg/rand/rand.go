package rand

// Credit to https://www.calhoun.io/creating-random-strings-in-go/

import (
	"math/rand"
	"time"
)

const (
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits  = "0123456789"

	idLength = 6
)

var seededRand *rand.Rand = rand.New(
	rand.NewSource(time.Now().UnixNano()))

func StringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}

func String(length int) string {
	return StringWithCharset(length, charset)
}

// ID returns an incident-style identifier, eg: ID("INC") => "INC402913"
func ID(prefix string) string {
	return prefix + StringWithCharset(idLength, digits)
}
