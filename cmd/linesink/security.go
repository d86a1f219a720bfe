package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

const signatureHeader = "X-Line-Signature"

// verifySignature reads the request body and checks the platform
// signature: base64-encoded HMAC-SHA256 of the raw body keyed with the
// channel secret. The body is restored on the request for downstream
// decoding.
func verifySignature(r *http.Request, channelSecret string) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		return nil, fmt.Errorf("missing signature header: %s", signatureHeader)
	}

	expected, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)

	if !hmac.Equal(mac.Sum(nil), expected) {
		return nil, fmt.Errorf("signature mismatch")
	}

	return body, nil
}
