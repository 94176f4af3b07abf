package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadBase64ToS3RejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"no comma", "not a data url"},
		{"comma but no data scheme", "foo,bar"},
		{"empty meta", ",SGVsbG8="},
		{"bad base64 body", "data:image/png;base64,!!!not-base64!!!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UploadBase64ToS3(tc.payload, "documents", "doc")
			assert.Error(t, err)
		})
	}
}
