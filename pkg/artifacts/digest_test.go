package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeManifestDigest_EmptyManifest(t *testing.T) {
	digest := ComputeManifestDigest(NewManifest())

	// md5 of "wandb-artifact-manifest-v1\n" with no entries.
	assert.Equal(t, "64e7c61456b10382e2f3b571ac24b659", digest)
}

func TestComputeManifestDigest_IgnoresInsertionOrder(t *testing.T) {
	first := NewManifest()
	first.AddFileEntry("a.txt", "/tmp/a", "digA", 1)
	first.AddFileEntry("b.txt", "/tmp/b", "digB", 2)

	second := NewManifest()
	second.AddFileEntry("b.txt", "/tmp/b", "digB", 2)
	second.AddFileEntry("a.txt", "/tmp/a", "digA", 1)

	assert.Equal(
		t, ComputeManifestDigest(first), ComputeManifestDigest(second))
}

func TestComputeManifestDigest_ChangesWithContent(t *testing.T) {
	base := NewManifest()
	base.AddFileEntry("a.txt", "/tmp/a", "digA", 1)

	renamed := NewManifest()
	renamed.AddFileEntry("b.txt", "/tmp/a", "digA", 1)

	edited := NewManifest()
	edited.AddFileEntry("a.txt", "/tmp/a", "digX", 1)

	baseDigest := ComputeManifestDigest(base)
	assert.Len(t, baseDigest, 32)
	assert.NotEqual(t, baseDigest, ComputeManifestDigest(renamed))
	assert.NotEqual(t, baseDigest, ComputeManifestDigest(edited))
}
