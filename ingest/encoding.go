package ingest

import "strings"

// Encoding is the closed set of request body encodings the API accepts.
type Encoding int

const (
	EncodingUnsupported Encoding = iota
	EncodingJSON
	EncodingForm
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingForm:
		return "form"
	default:
		return "unsupported"
	}
}

// Classify maps a Content-Type header value onto an Encoding. Parameters
// like charset or multipart boundaries are ignored.
func Classify(contentType string) Encoding {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/json"):
		return EncodingJSON
	case strings.Contains(ct, "multipart/form-data"),
		strings.Contains(ct, "application/x-www-form-urlencoded"):
		return EncodingForm
	default:
		return EncodingUnsupported
	}
}
