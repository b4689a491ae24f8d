package ratelimit

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestRecordEncodeDecode(t *testing.T) {
	rec := Record{WindowStart: time.UnixMilli(1767225600000), Count: 4}

	encoded := encodeRecord(rec)
	assert.Equal(t, "1767225600000:4", encoded)

	decoded, err := decodeRecord(encoded)
	assert.Equal(t, nil, err)
	assert.Equal(t, rec, decoded)
}

func TestRecordEncode_Zero(t *testing.T) {
	assert.Equal(t, "", encodeRecord(Record{}))
}

func TestRecordDecode_Malformed(t *testing.T) {
	for _, val := range []string{"", "abc", "123", "123:xyz", "xyz:4"} {
		_, err := decodeRecord(val)
		assert.NotEqual(t, nil, err)
	}
}
