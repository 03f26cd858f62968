package extract

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileHashes holds the digests computed for one file.
type FileHashes struct {
	MD5    string
	SHA1   string
	SHA256 string
	Size   int64
}

// HashFile computes MD5, SHA1 and SHA256 digests of a file in a single read.
func HashFile(path string) (FileHashes, error) {
	fh, err := os.Open(path)
	if err != nil {
		return FileHashes{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer fh.Close()

	h5 := md5.New()
	h1 := sha1.New()
	h256 := sha256.New()

	n, err := io.Copy(io.MultiWriter(h5, h1, h256), fh)
	if err != nil {
		return FileHashes{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return FileHashes{
		MD5:    hex.EncodeToString(h5.Sum(nil)),
		SHA1:   hex.EncodeToString(h1.Sum(nil)),
		SHA256: hex.EncodeToString(h256.Sum(nil)),
		Size:   n,
	}, nil
}
