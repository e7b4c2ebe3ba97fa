package samples

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func filesystemDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "open-missing-file",
			Topic:    "filesystem",
			Synopsis: "opening a shelf index that was never written",
			Expect:   faultbook.ClassNotFound,
			Run: func(ctx context.Context) error {
				path := filepath.Join(os.TempDir(), "faultbook-missing-shelf", "books.json")
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				return f.Close()
			},
		},
		{
			Name:     "create-exclusive-existing",
			Topic:    "filesystem",
			Synopsis: "exclusively creating a shelf index that already exists",
			Expect:   faultbook.ClassAlreadyExists,
			Run: func(ctx context.Context) error {
				existing, err := os.CreateTemp("", "faultbook-shelf-*.json")
				if err != nil {
					return faultbook.Wrap(err, "prepare existing index",
						faultbook.CategoryFilesystem)
				}
				defer os.Remove(existing.Name())
				if err := existing.Close(); err != nil {
					return faultbook.Wrap(err, "prepare existing index",
						faultbook.CategoryFilesystem)
				}

				f, err := os.OpenFile(existing.Name(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
				if err != nil {
					return err
				}
				return f.Close()
			},
		},
		{
			Name:     "truncated-record",
			Topic:    "filesystem",
			Synopsis: "decoding a fixed-width book record from a truncated buffer",
			Expect:   faultbook.ClassDataLoss,
			Run: func(ctx context.Context) error {
				var pageCount int64
				truncated := bytes.NewReader([]byte{0x00, 0x00, 0x04})
				return binary.Read(truncated, binary.BigEndian, &pageCount)
			},
		},
	}
}
