package security

import "testing"

func TestPasswordHasher_VerifyMatchingPassword(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !hasher.Verify("secret123", hash) {
		t.Error("expected matching password to verify")
	}
}

func TestPasswordHasher_RejectWrongPassword(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hasher.Verify("not-the-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
	if hasher.Verify("secret123", "not-a-bcrypt-hash") {
		t.Error("expected garbage hash to fail verification")
	}
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher()

	first, _ := hasher.Hash("secret123")
	second, _ := hasher.Hash("secret123")

	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}
