// Package checksum computes content fingerprints for log messages.
//
// Fingerprints are SHA-256 over a domain prefix, a 0x00 separator and the
// NFC-normalized text. They identify message content only; two messages
// with the same text always share a fingerprint regardless of where they
// were logged from.
package checksum
