package hash

import "testing"

func TestCRC32KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewCRC32() }, []vector{
		{name: "123456789", data: "123456789", want: "cbf43926"},
		{name: "empty", data: "", want: "00000000"},
	})
}

func TestCRC32CKnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewCRC32C() }, []vector{
		{name: "123456789", data: "123456789", want: "e3069283"},
		{name: "empty", data: "", want: "00000000"},
	})
}

func TestCRC32ResetRoundTrip(t *testing.T) {
	h := NewCRC32()
	if err := h.Update([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := h.UpdateLast(nil); err != nil {
		t.Fatal(err)
	}
	a, _ := h.Digest()

	h.Reset()
	if err := h.Update([]byte("xyz")); err != nil {
		t.Fatal(err)
	}
	if err := h.UpdateLast(nil); err != nil {
		t.Fatal(err)
	}
	h.Reset()
	if err := h.Update([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := h.UpdateLast(nil); err != nil {
		t.Fatal(err)
	}
	b, _ := h.Digest()

	if string(a) != string(b) {
		t.Fatalf("reset round trip mismatch: %x != %x", a, b)
	}
}

// TestCRC32LastBlockStillFinalizes checks the open question noted in
// DESIGN.md: BlockSize()==1 means the engine's last-block split sends
// everything to Update and an empty slice to UpdateLast, which must
// still flip the finalized flag.
func TestCRC32LastBlockStillFinalizes(t *testing.T) {
	h := NewCRC32()
	if err := h.Update([]byte("123456789")); err != nil {
		t.Fatal(err)
	}
	if err := h.UpdateLast(nil); err != nil {
		t.Fatal(err)
	}
	got, err := h.Digest()
	if err != nil {
		t.Fatalf("Digest after UpdateLast(nil): %v", err)
	}
	if string(got) == "" {
		t.Fatal("expected a non-empty digest")
	}
	if err := h.Update([]byte{1}); err == nil {
		t.Fatal("expected UpdatingAfterFinished after finalize")
	}
}
