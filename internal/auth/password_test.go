package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("password stored in plaintext")
	}

	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}
