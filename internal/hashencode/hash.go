package hashencode

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"
)

// ComputeB64MD5 returns the MD5 hash of data as a base64 encoded string.
//
// Base64 MD5 is the digest format used in artifact manifests and in the
// createArtifactFiles mutation.
func ComputeB64MD5(data []byte) string {
	hasher := md5.New()
	_, _ = hasher.Write(data) // hasher.Write can't fail; the returned values are just to implement io.Writer
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

// ComputeHexMD5 returns the MD5 hash of data as a hexadecimal string.
//
// Hex MD5 is the digest format for multipart upload parts.
func ComputeHexMD5(data []byte) string {
	hasher := md5.New()
	_, _ = hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ComputeReaderHexMD5 computes the MD5 hash of everything readable from
// reader and returns the result as a hexadecimal string.
func ComputeReaderHexMD5(reader io.Reader) (string, error) {
	hasher := md5.New()
	if _, err := io.Copy(hasher, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ComputeFileB64MD5 computes the MD5 hash of the file at the given path and
// returns the result as a base64 encoded string.
//
// Returns an error if the file cannot be opened or read.
func ComputeFileB64MD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := md5.New()
	if _, err = io.Copy(hasher, f); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil)), nil
}

// VerifyFileB64MD5 reports whether the file at the given path matches the
// provided base64-encoded MD5 hash.
//
// Returns false if the file is missing, unreadable, or has different content.
func VerifyFileB64MD5(path string, b64md5 string) bool {
	actual, err := ComputeFileB64MD5(path)
	if err != nil {
		return false
	}
	return actual == b64md5
}
