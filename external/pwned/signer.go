package pwned

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// CanonicalString is the message a request signature covers:
// publicKey|METHOD|resource|body. A request without a body signs an empty
// body component.
func CanonicalString(publicKey, method, resource, body string) string {
	var b strings.Builder
	b.Grow(len(publicKey) + len(method) + len(resource) + len(body) + 3)
	b.WriteString(publicKey)
	b.WriteByte('|')
	b.WriteString(method)
	b.WriteByte('|')
	b.WriteString(resource)
	b.WriteByte('|')
	b.WriteString(body)
	return b.String()
}

// Sign returns the lowercase hex HMAC-SHA256 of the canonical string keyed
// with the private key.
func Sign(publicKey, privateKey, method, resource, body string) string {
	mac := hmac.New(sha256.New, []byte(privateKey))
	mac.Write([]byte(CanonicalString(publicKey, method, resource, body)))
	return hex.EncodeToString(mac.Sum(nil))
}

func signedQuery(publicKey, signature string) string {
	values := url.Values{}
	values.Set("publicKey", publicKey)
	values.Set("signature", signature)
	return values.Encode()
}
