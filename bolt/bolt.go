package bolt

import (
	"encoding/binary"
	"time"
)

//go:generate protoc --gogo_out=. bolt.proto

// Bucket names.
var (
	resolutionsBucket   = []byte("Resolutions")
	resolutionIDsBucket = []byte("Resolutions.ID")
)

// itob returns an 8-byte big-endian encoded byte slice of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func encodeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func decodeTime(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.Unix(0, v).UTC()
}
