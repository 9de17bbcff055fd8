package hash

import "testing"

func TestSHA1KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewSHA1() }, []vector{
		{name: "abc", data: "abc", want: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{
			name: "two-block",
			data: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			want: "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{name: "million-a", data: "a", repeat: 1000000, want: "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
	})
}

func TestSHA1FinalizeDiscipline(t *testing.T) {
	h := NewSHA1()
	if _, err := h.Digest(); err == nil {
		t.Fatal("expected NotFinished before UpdateLast")
	}
	if err := h.Update(make([]byte, h.BlockSize()+1)); err == nil {
		t.Fatal("expected DataLengthMismatched for a non-block-multiple Update")
	}
	if err := h.UpdateLast(make([]byte, h.BlockSize()+1)); err == nil {
		t.Fatal("expected DataTooLarge for an over-long UpdateLast")
	}
	if err := h.UpdateLast([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := h.Update([]byte("more")); err == nil {
		t.Fatal("expected UpdatingAfterFinished")
	}
}
