// Package whatsappsvc chứa service cho domain WhatsApp.
// File này xác thực chữ ký X-Hub-Signature-256 của webhook Meta.
package whatsappsvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// VerifySignature kiểm tra chữ ký HMAC-SHA256 của webhook body.
// Header có dạng "sha256=<hex digest>"; prefix "sha256=" là tùy chọn.
// So sánh bằng hmac.Equal (constant-time) để chặn timing attack.
// Luôn trả về false với đầu vào thiếu hoặc sai dạng, không bao giờ panic.
func VerifySignature(rawBody []byte, signatureHeader string, secret string) bool {
	if len(rawBody) == 0 || signatureHeader == "" || secret == "" {
		return false
	}

	receivedHex := strings.TrimPrefix(signatureHeader, signaturePrefix)
	receivedBytes, err := hex.DecodeString(receivedHex)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expectedBytes := mac.Sum(nil)

	if len(receivedBytes) != len(expectedBytes) {
		return false
	}
	return hmac.Equal(receivedBytes, expectedBytes)
}

// ComputeSignature tạo header chữ ký cho một body, dùng trong test
// và khi forward webhook sang hệ thống nội bộ khác.
func ComputeSignature(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
