package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP generates a secure random numeric OTP of the specified length.
func GenerateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendOTPMessage delivers the OTP to the user's phone or email.
// Actual delivery (SMS/WhatsApp provider) is wired per deployment; the
// development build logs the outgoing message.
func SendOTPMessage(contact, message string) error {
	GetLogger().Sugar().Infof("Sending OTP message to %s: %s", contact, message)
	return nil
}
