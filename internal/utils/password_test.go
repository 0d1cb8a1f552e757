package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from the plain password")
	}

	ok, err := CheckPassword(hash, "s3cret")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = CheckPassword(hash, "wrong")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
	if ok {
		t.Fatal("expected ok=false for malformed hash")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("pw", bcrypt.MaxCost+1); err == nil {
		t.Fatal("expected error for out-of-range cost, got nil")
	}
}
