// internal/daily/daily.go
//
// Daily mode: every player gets the same sequence of pairs and the same
// piece layout on a given day. Seeds are derived from HMAC(salt, YYYY-MM-DD)
// so the sequence cannot be predicted without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seeds returns four generator seeds for the given day: two for the pair
// picker and two for the mixer.
func Seeds(date time.Time, salt string) (picker [2]uint64, mixer [2]uint64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	picker[0] = binary.BigEndian.Uint64(sum[0:8])
	picker[1] = binary.BigEndian.Uint64(sum[8:16])
	mixer[0] = binary.BigEndian.Uint64(sum[16:24])
	mixer[1] = binary.BigEndian.Uint64(sum[24:32])
	return picker, mixer
}
