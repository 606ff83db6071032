package auth

import "testing"

func TestHashPassword_NeverPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password1" {
		t.Fatal("hash equals plaintext")
	}
	if hash == "" {
		t.Fatal("empty hash")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("password1", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("password2", hash) {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("", hash) {
		t.Fatal("empty password accepted")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext are identical; salt is not fresh")
	}
}
