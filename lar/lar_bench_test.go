package lar

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/larkit/compress"
)

func BenchmarkAddFile(b *testing.B) {
	dir := b.TempDir()
	src := filepath.Join(dir, "payload.bin")
	if err := os.WriteFile(src, compressible(64<<10), 0o644); err != nil {
		b.Fatal(err)
	}

	for _, algo := range []compress.Algorithm{compress.None, compress.Zstd, compress.LZ4, compress.S2} {
		b.Run(algo.String(), func(b *testing.B) {
			opts := &AddOptions{Algorithm: algo, Store: algo == compress.None}
			b.ReportAllocs()
			b.SetBytes(64 << 10)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				path := filepath.Join(dir, fmt.Sprintf("%s-%d.img", algo, i))
				a, err := Create(path, 1<<20, nil)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if err := a.AddFile(AddSpec{Source: src, Name: "payload"}, opts); err != nil {
					b.Fatal(err)
				}

				b.StopTimer()
				_ = a.Close()
				b.StartTimer()
			}
		})
	}
}

func BenchmarkList(b *testing.B) {
	dir := b.TempDir()
	a, err := Create(filepath.Join(dir, "fw.img"), 4<<20, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()

	src := filepath.Join(dir, "small.bin")
	if err := os.WriteFile(src, compressible(512), 0o644); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		spec := AddSpec{Source: src, Name: fmt.Sprintf("entry-%03d", i)}
		if err := a.AddFile(spec, &AddOptions{Store: true}); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.List(nil); err != nil {
			b.Fatal(err)
		}
	}
}
