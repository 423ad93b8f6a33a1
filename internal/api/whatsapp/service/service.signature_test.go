// Package whatsappsvc - Test xác thực chữ ký X-Hub-Signature-256.
package whatsappsvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signatureFor(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_ValidSignature(t *testing.T) {
	body := []byte(`{"object":"whatsapp_business_account","entry":[]}`)
	secret := "app-secret"

	if !VerifySignature(body, signatureFor(body, secret), secret) {
		t.Error("chữ ký đúng phải được chấp nhận")
	}
}

func TestVerifySignature_PrefixIsOptional(t *testing.T) {
	body := []byte("payload")
	secret := "app-secret"
	withPrefix := signatureFor(body, secret)
	withoutPrefix := withPrefix[len("sha256="):]

	if !VerifySignature(body, withoutPrefix, secret) {
		t.Error("chữ ký không có prefix sha256= vẫn phải được chấp nhận")
	}
}

func TestVerifySignature_RejectsTamperedBody(t *testing.T) {
	body := []byte("payload")
	secret := "app-secret"
	signature := signatureFor(append(body, 'x'), secret)

	if VerifySignature(body, signature, secret) {
		t.Error("chữ ký tính trên body khác phải bị từ chối")
	}
}

func TestVerifySignature_NeverPanicsOnMalformedInput(t *testing.T) {
	body := []byte("payload")
	secret := "app-secret"

	cases := []struct {
		name      string
		body      []byte
		signature string
		secret    string
	}{
		{"header rỗng", body, "", secret},
		{"body rỗng", nil, signatureFor(body, secret), secret},
		{"secret rỗng", body, signatureFor(body, secret), ""},
		{"hex không hợp lệ", body, "sha256=zzzz", secret},
		{"digest sai độ dài", body, "sha256=abcd", secret},
		{"chỉ có prefix", body, "sha256=", secret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.body, tc.signature, tc.secret) {
				t.Error("đầu vào sai dạng phải bị từ chối")
			}
		})
	}
}

func TestComputeSignature_RoundTrip(t *testing.T) {
	body := []byte(`{"entry":[{"id":"123"}]}`)
	secret := "app-secret"

	if !VerifySignature(body, ComputeSignature(body, secret), secret) {
		t.Error("chữ ký do ComputeSignature tạo phải verify được")
	}
}
