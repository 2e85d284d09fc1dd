// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Command bench measures compression ratio and speed of all codecs on the
// Silesia corpus and compares them with zstd and xz.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"testing"

	compression "github.com/aufdj/compression-algorithms"
	"github.com/aufdj/compression-algorithms/internal/corpus"
	"github.com/klauspost/compress/zstd"
	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/zdata"
)

// result is the outcome of one benchmark.
type result struct {
	Name  string
	Ratio float64
	MBps  float64
}

// mbPerSec returns the megabytes (1 000 000 bytes) per second processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

// sizeFunc returns the compressed size of the files.
type sizeFunc func(files []corpus.File) (int64, error)

func benchmark(files []corpus.File, size sizeFunc) func(b *testing.B) {
	return func(b *testing.B) {
		total := corpus.Size(files)
		b.SetBytes(total)
		var (
			n   int64
			err error
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if n, err = size(files); err != nil {
				b.Fatalf("compression error %s", err)
			}
		}
		b.StopTimer()
		b.ReportMetric(float64(n)/float64(total), "c/u")
	}
}

func codecSize(a compression.Algorithm) sizeFunc {
	return func(files []corpus.File) (int64, error) {
		c, err := compression.NewCodec(a, nil)
		if err != nil {
			return 0, err
		}
		return corpus.CompressedSize(files, c)
	}
}

func zstdSize(files []corpus.File) (int64, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	n := int64(0)
	var dst []byte
	for _, f := range files {
		dst = enc.EncodeAll(f.Data, dst[:0])
		n += int64(len(dst))
	}
	return n, nil
}

func xzSize(files []corpus.File) (int64, error) {
	return corpus.CompressedSizeWriter(files,
		func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		})
}

func main() {
	log.SetPrefix("bench: ")
	log.SetFlags(0)
	testing.Init()

	fs := pflag.NewFlagSet("bench", pflag.ExitOnError)
	limit := fs.IntP("limit", "n", 1<<20,
		"bytes used from each corpus file; 0 uses whole files")
	baseline := fs.BoolP("baseline", "b", true, "include zstd and xz")
	fs.Parse(os.Args[1:])

	files, err := corpus.Files(zdata.Silesia, *limit)
	if err != nil {
		log.Fatalf("corpus.Files error %s", err)
	}
	fmt.Printf("%d files, %d bytes\n", len(files), corpus.Size(files))

	type entry struct {
		name string
		size sizeFunc
	}
	var entries []entry
	for _, a := range compression.Algorithms() {
		entries = append(entries, entry{a.String(), codecSize(a)})
	}
	if *baseline {
		entries = append(entries,
			entry{"zstd", zstdSize}, entry{"xz", xzSize})
	}

	var results []result
	for _, e := range entries {
		r := testing.Benchmark(benchmark(files, e.size))
		fmt.Printf("%-8s %s\n", e.name, r)
		results = append(results, result{
			Name:  e.name,
			Ratio: ratio(r),
			MBps:  mbPerSec(r),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Ratio < results[j].Ratio
	})
	fmt.Printf("\n### Result ###\n\n")
	pretty.Println(results)
}
