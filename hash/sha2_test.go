package hash

import "testing"

func TestSHA224KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewSHA224() }, []vector{
		{name: "empty", data: "", want: "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
		{name: "abc", data: "abc", want: "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{name: "million-a", data: "a", repeat: 1000000, want: "20794655980c91d8bbb4c1ea97618a4bf03f42581948b2ee4ee7ad67"},
	})
}

func TestSHA256KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewSHA256() }, []vector{
		{name: "empty", data: "", want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{name: "abc", data: "abc", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{name: "million-a", data: "a", repeat: 1000000, want: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	})
}

func TestSHA384KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewSHA384() }, []vector{
		{
			name: "empty",
			data: "",
			want: "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b",
		},
		{
			name: "abc",
			data: "abc",
			want: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		},
		{
			name: "million-a", data: "a", repeat: 1000000,
			want: "9d0e1809716474cb086e834e310a4a1ced149e9c00f248527972cec5704c2a5b07b8b3dc38ecc4ebae97ddd87f3d8985",
		},
	})
}

func TestSHA512KnownAnswers(t *testing.T) {
	runVectors(t, func() Hasher { return NewSHA512() }, []vector{
		{
			name: "empty",
			data: "",
			want: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			name: "abc",
			data: "abc",
			want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			name: "million-a", data: "a", repeat: 1000000,
			want: "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b",
		},
	})
}

func TestSHA2FinalizeDiscipline(t *testing.T) {
	for _, h := range []Hasher{NewSHA224(), NewSHA256(), NewSHA384(), NewSHA512()} {
		h := h
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
}

func BenchmarkSHA256(b *testing.B) {
	data := make([]byte, 1<<20)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		h := NewSHA256()
		_ = h.Update(data)
		_ = h.UpdateLast(nil)
		_, _ = h.Digest()
	}
}
