package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Domain prefixes for content fingerprints.
// Version suffix enables future algorithm migration.
const (
	DomainMessage = "ease/log-message/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Message returns the fingerprint of a log message.
//
// The message is NFC normalized first so that visually identical messages
// composed differently (e.g. "é" vs "é") share a fingerprint.
func Message(message string) string {
	return hashWithDomain(DomainMessage, []byte(norm.NFC.String(message)))
}

// Describe renders any value as a human-readable string.
//
//   - strings and []byte pass through unchanged
//   - errors use Error(), fmt.Stringers use String()
//   - other scalars use their natural text form
//   - nil becomes the empty string
//   - everything else is rendered as a YAML document
func Describe(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprint(val)
	}

	out, err := marshalYAML(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimSuffix(string(out), "\n")
}

// marshalYAML wraps yaml.Marshal, which panics on kinds it cannot encode
// (channels, funcs).
func marshalYAML(v any) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Marshal(v)
}
