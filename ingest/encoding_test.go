package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		contentType string
		want        Encoding
	}{
		{"application/json", EncodingJSON},
		{"application/json; charset=utf-8", EncodingJSON},
		{"APPLICATION/JSON", EncodingJSON},
		{"multipart/form-data; boundary=xyz", EncodingForm},
		{"application/x-www-form-urlencoded", EncodingForm},
		{"text/plain", EncodingUnsupported},
		{"application/xml", EncodingUnsupported},
		{"", EncodingUnsupported},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.contentType), "content-type %q", tc.contentType)
	}
}
