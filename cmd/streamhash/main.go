package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	getopt "github.com/pborman/getopt/v2"
	"github.com/pborman/options"

	"github.com/maboroshinokiseki/mhash"
	"github.com/maboroshinokiseki/mhash/engine"
)

// ioOptimizations are OS-specific tweaks applied to stdin before
// streaming it; optimize_linux.go appends the pipe-buffer-size bump.
var ioOptimizations []func(os.FileInfo, *os.File) error

func applyIOOptimizations(f *os.File) {
	st, err := f.Stat()
	if err != nil {
		return
	}
	for _, opt := range ioOptimizations {
		_ = opt(st, f)
	}
}

// BufSize is the default reusable buffer size for file producers,
// chosen the same way the teacher sized its own stdin TeeReader buffer:
// large enough that a typical disk read fills several engine blocks.
const BufSize = 16 << 20

var algorithmsByName = map[string]mhash.HasherTag{
	"crc32":    mhash.CRC32,
	"crc32c":   mhash.CRC32C,
	"md2":      mhash.MD2,
	"md4":      mhash.MD4,
	"md5":      mhash.MD5,
	"sha1":     mhash.SHA1,
	"sha224":   mhash.SHA224,
	"sha256":   mhash.SHA256,
	"sha384":   mhash.SHA384,
	"sha512":   mhash.SHA512,
	"sha3-224": mhash.SHA3_224,
	"sha3-256": mhash.SHA3_256,
	"sha3-384": mhash.SHA3_384,
	"sha3-512": mhash.SHA3_512,
}

func main() {
	opts := &struct {
		Algorithms string       `getopt:"-a --algorithms  Comma-separated list of algorithms to compute (default sha256)"`
		BlockSize  int          `getopt:"-b --block-size  Reusable buffer size in bytes, floored to a multiple of 128"`
		Help       options.Help `getopt:"-h --help        Display help"`
	}{
		Algorithms: "sha256",
		BlockSize:  BufSize,
	}

	options.RegisterAndParse(opts)
	paths := getopt.Args()

	tags, err := parseAlgorithms(opts.Algorithms)
	if err != nil {
		log.Fatal(err)
	}

	b := engine.NewBuilder().
		BlockSize(engine.ApproximateBlockSize(opts.BlockSize)).
		IdentifierCount(len(paths)).
		OnResult(func(r engine.Result) {
			digest, err := r.Hasher.Digest()
			if err != nil {
				log.Fatalf("%s: %s: %s", r.Identifier, r.Tag, err)
			}
			fmt.Printf("%s  %s  %s\n", hex.EncodeToString(digest), r.Tag, r.Identifier)
		}).
		OnError(func(e engine.HasherError) {
			log.Printf("%s: %s", e.Identifier, e.Err)
		})

	eng, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	sender := eng.DataSender()

	if len(paths) == 0 {
		go func() {
			streamStdin(sender, tags)
			sender.End()
		}()
	} else {
		for _, path := range paths {
			hashers := newHashers(tags)
			sender.PushFile(mhash.NewPathIdentifier(path), path, hashers)
		}
		sender.End()
	}

	eng.Compute()
}

func streamStdin(sender *engine.DataSender, tags []mhash.HasherTag) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		log.Println("Reading from STDIN...")
	}
	applyIOOptimizations(os.Stdin)

	id := mhash.NewNameIdentifier("-")
	fs := sender.FragmentSender(id, newHashers(tags))

	buf := make([]byte, fs.BlockSize())
	for {
		n, err := io.ReadFull(os.Stdin, buf)
		if n == fs.BlockSize() && err == nil {
			fs.PushData(buf[:n])
			buf = make([]byte, fs.BlockSize())
			continue
		}
		fs.PushLastData(buf[:n])
		return
	}
}

func newHashers(tags []mhash.HasherTag) []*engine.HasherWrapper {
	hashers := make([]*engine.HasherWrapper, 0, len(tags))
	for _, tag := range tags {
		h, err := engine.NewHasherFromTag(tag)
		if err != nil {
			log.Fatal(err)
		}
		hashers = append(hashers, engine.NewHasherWrapper(tag, h))
	}
	return hashers
}

func parseAlgorithms(csv string) ([]mhash.HasherTag, error) {
	var tags []mhash.HasherTag
	for _, name := range strings.Split(csv, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		tag, ok := algorithmsByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("no algorithms selected")
	}
	return tags, nil
}
