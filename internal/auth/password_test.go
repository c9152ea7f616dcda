package auth

import "testing"

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "Secret1"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if err := VerifyPassword(hash, password); err != nil {
		t.Fatalf("expected password to verify, got error: %v", err)
	}

	if err := VerifyPassword(hash, "Secret2"); err == nil {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if err := VerifyPassword("not-a-bcrypt-hash", "whatever"); err == nil {
		t.Fatal("expected malformed hash to be treated as a mismatch")
	}
	if err := VerifyPassword("", "whatever"); err == nil {
		t.Fatal("expected empty hash to be treated as a mismatch")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("Secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("Secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}
