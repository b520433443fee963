package utils

import (
	"testing"
)

func TestAdminPasswordRoundTrip(t *testing.T) {
	hash, err := HashAdminPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashAdminPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("HashAdminPassword() returned empty hash")
	}

	if !VerifyAdminPassword(hash, "correct horse battery staple") {
		t.Error("VerifyAdminPassword() should accept the original password")
	}
	if VerifyAdminPassword(hash, "wrong password") {
		t.Error("VerifyAdminPassword() should reject a wrong password")
	}
}

func TestHashAdminPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashAdminPassword(""); err == nil {
		t.Error("HashAdminPassword(\"\") should return an error")
	}
}

func TestVerifyAdminPasswordEmptyHash(t *testing.T) {
	if VerifyAdminPassword("", "anything") {
		t.Error("VerifyAdminPassword with empty hash should return false")
	}
}
