package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}

	ok, err := Verify("secret1", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestHash_SaltRandomization(t *testing.T) {
	h1, err := Hash("same-input")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	h2, err := Hash("same-input")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input must differ (random salt)")
	}

	for _, h := range []string{h1, h2} {
		ok, err := Verify("same-input", h)
		if err != nil || !ok {
			t.Fatalf("hash %q did not verify: ok=%v err=%v", h, ok, err)
		}
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := Verify("battery-staple", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	ok, err := Verify("anything", "not-a-bcrypt-hash")
	if ok {
		t.Fatalf("malformed hash must not verify")
	}
	if err == nil {
		t.Fatalf("malformed hash must surface an internal error, not a plain mismatch")
	}
}
