package artifacts

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	atomicfile "github.com/natefinch/atomic"
	"github.com/wandb/wandb/filesync/internal/hashencode"
)

// Cache is a content-addressed store of artifact file contents, keyed by
// base64 MD5 digest.
//
// Uploaded files are inserted so that a later download of the same
// artifact version doesn't have to fetch them again. Insertion is
// best-effort: a full disk or permission error loses the cache entry,
// never the upload.
type Cache interface {
	// AddFile copies the file into the cache and returns its digest.
	AddFile(path string) (string, error)

	// AddFileAndCheckDigest copies the file into the cache and verifies
	// that its content matches the expected digest.
	AddFileAndCheckDigest(path string, digest string) error

	// Write streams src into the cache and returns its digest.
	Write(src io.Reader) (string, error)

	// Check reports whether the cache holds content with the given
	// digest and size.
	Check(digest string, size int64) bool
}

// FileCache stores files under <root>/md5/<aa>/<bb>/<rest of hex digest>.
type FileCache struct {
	root string
}

// NewFileCache returns a cache rooted under the given directory.
//
// Pass the configured cache directory, e.g. Settings.GetCacheDir().
func NewFileCache(dir string) *FileCache {
	return &FileCache{root: filepath.Join(dir, "artifacts")}
}

// HashOnlyCache computes digests without persisting anything.
//
// Used when caching is disabled; callers still get digest verification.
type HashOnlyCache struct{}

func NewHashOnlyCache() *HashOnlyCache {
	return &HashOnlyCache{}
}

func (c *FileCache) AddFile(path string) (string, error) {
	return c.addFile(path)
}

func (c *HashOnlyCache) AddFile(path string) (string, error) {
	return hashencode.ComputeFileB64MD5(path)
}

func (c *FileCache) AddFileAndCheckDigest(path string, digest string) error {
	return addFileAndCheckDigest(c, path, digest)
}

func (c *HashOnlyCache) AddFileAndCheckDigest(path string, digest string) error {
	return addFileAndCheckDigest(c, path, digest)
}

// Write streams src into a temp file under the cache root, hashing as it
// copies, then renames the temp file into its content-addressed path.
// Concurrent writers of the same content race safely: whichever rename
// lands last wins and both leave identical bytes.
func (c *FileCache) Write(src io.Reader) (string, error) {
	if err := os.MkdirAll(filepath.Join(c.root, "tmp"), 0700); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Join(c.root, "tmp"), "")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	hasher := md5.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hasher), src); err != nil {
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	b64md5 := base64.StdEncoding.EncodeToString(hasher.Sum(nil))
	dst, err := c.md5Path(b64md5)
	if err != nil {
		return "", err
	}

	// Already present; the rename would be a no-op rewrite.
	if _, err := os.Stat(dst); err == nil {
		return b64md5, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return "", err
	}
	if err := atomicfile.ReplaceFile(tmp.Name(), dst); err != nil {
		return "", err
	}
	return b64md5, nil
}

func (c *HashOnlyCache) Write(src io.Reader) (string, error) {
	hasher := md5.New()
	if _, err := io.Copy(hasher, src); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil)), nil
}

func (c *FileCache) Check(digest string, size int64) bool {
	path, err := c.md5Path(digest)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == size
}

func (c *HashOnlyCache) Check(string, int64) bool {
	return false
}

func (c *FileCache) addFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return c.Write(f)
}

// md5Path maps a base64 MD5 digest to its location in the cache.
func (c *FileCache) md5Path(b64md5 string) (string, error) {
	hexHash, err := hashencode.B64ToHex(b64md5)
	if err != nil {
		return "", err
	}
	if len(hexHash) != 32 {
		return "", fmt.Errorf("invalid digest %q", b64md5)
	}
	return filepath.Join(
		c.root, "md5", hexHash[:2], hexHash[2:4], hexHash[4:],
	), nil
}

func addFileAndCheckDigest(c Cache, path string, digest string) error {
	b64md5, err := c.AddFile(path)
	if err != nil {
		return err
	}
	if b64md5 != digest {
		return fmt.Errorf(
			"file hash mismatch for %s: expected %s, got %s",
			path, digest, b64md5,
		)
	}
	return nil
}
