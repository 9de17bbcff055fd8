package hash

import "testing"

func TestMD5KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewMD5() }, []vector{
		{name: "empty", data: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "a", data: "a", want: "0cc175b9c0f1b6a831c399e269772661"},
		{name: "abc", data: "abc", want: "900150983cd24fb0d6963f7d28e17f72"},
		{name: "message digest", data: "message digest", want: "f96b697d7cb7938d525a2f31aaf161d0"},
		{name: "a-z", data: "abcdefghijklmnopqrstuvwxyz", want: "c3fcd3d76192e4007dfb496cca67e13b"},
		{
			name: "mixed alnum",
			data: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
			want: "d174ab98d277d9f5a5611c2c9f419d9f",
		},
		{name: "digits x8", data: "1234567890", repeat: 8, want: "57edf4a22be3c955ac49da2e2107b67a"},
	})
}

func TestMD5FinalizeDiscipline(t *testing.T) {
	h := NewMD5()
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
