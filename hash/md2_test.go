package hash

import "testing"

func TestMD2KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewMD2() }, []vector{
		{name: "empty", data: "", want: "8350e5a3e24c153df2275c9f80692773"},
		{name: "a", data: "a", want: "32ec01ec4a6dac72c0ab96fb34c0b5d1"},
		{name: "abc", data: "abc", want: "da853b0d3f88d99b30283a69e6ded6bb"},
		{name: "message digest", data: "message digest", want: "ab4f496bfb2a530b219ff33031fe06b0"},
	})
}

func TestMD2ResetRoundTrip(t *testing.T) {
	h := NewMD2()
	if err := h.UpdateLast([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	a, _ := h.Digest()

	h.Reset()
	if err := h.UpdateLast([]byte("different")); err != nil {
		t.Fatal(err)
	}
	h.Reset()
	if err := h.UpdateLast([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	b, _ := h.Digest()
	if string(a) != string(b) {
		t.Fatalf("reset round trip mismatch: %x != %x", a, b)
	}
}

func TestMD2FinalizeDiscipline(t *testing.T) {
	h := NewMD2()
	if _, err := h.Digest(); err == nil {
		t.Fatal("expected NotFinished before UpdateLast")
	}
	if err := h.UpdateLast([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := h.Update([]byte("more")); err == nil {
		t.Fatal("expected UpdatingAfterFinished")
	}
	if err := h.UpdateLast(make([]byte, h.BlockSize()+1)); err == nil {
		t.Fatal("expected UpdatingAfterFinished for an over-long UpdateLast on an already-finished hasher (still must reject, not panic)")
	}
}
