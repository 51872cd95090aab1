package artifacts

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
)

// ComputeManifestDigest returns the artifact version's digest.
//
// The digest is the hex MD5 of a versioned header followed by one
// "<path>:<digest>" line per entry in lexicographic path order, so two
// manifests with the same contents always produce the same digest no
// matter the insertion order.
func ComputeManifestDigest(manifest *Manifest) string {
	type hashedEntry struct {
		name   string
		digest string
	}

	var entries []hashedEntry
	for name, entry := range manifest.Contents {
		entries = append(entries, hashedEntry{
			name:   name,
			digest: entry.Digest,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	hasher := md5.New()
	hasher.Write([]byte("wandb-artifact-manifest-v1\n"))
	for _, entry := range entries {
		hasher.Write([]byte(fmt.Sprintf("%s:%s\n", entry.name, entry.digest)))
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
