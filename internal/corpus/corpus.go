// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus loads test corpora and measures codecs on them.
package corpus

import (
	"bytes"
	"io"
	"io/fs"

	compression "github.com/aufdj/compression-algorithms"
)

// File is a corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus. If limit is positive only
// the first limit bytes of each file are kept.
func Files(corpus fs.FS, limit int) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			if limit > 0 && len(data) > limit {
				data = data[:limit:limit]
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// CompressedSize compresses every file with c and returns the total size of
// the output.
func CompressedSize(files []File, c compression.Codec) (n int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		err = c.Compress(cw, bytes.NewReader(f.Data))
		n += cw.n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriterFunc creates a compressing writer, like xz.NewWriter.
type WriterFunc func(w io.Writer) (io.WriteCloser, error)

// CompressedSizeWriter measures a compressor with a streaming writer API.
func CompressedSizeWriter(files []File, newWriter WriterFunc) (n int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := newWriter(cw)
		if err != nil {
			return n, err
		}
		if _, err = w.Write(f.Data); err != nil {
			return n, err
		}
		if err = w.Close(); err != nil {
			return n, err
		}
		n += cw.n
	}
	return n, nil
}
