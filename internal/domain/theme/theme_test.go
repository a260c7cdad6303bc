package theme

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	ownerID := uuid.New()
	th := Default(ownerID)

	assert.Equal(t, ownerID, th.OwnerID)
	assert.Equal(t, "#10b981", th.PrimaryColor)
	assert.Equal(t, "#ffffff", th.BackgroundColor)
	assert.Equal(t, "Inter", th.FontFamily)
	assert.Equal(t, LayoutModern, th.Layout)
}

func TestMerge_PartialPatchKeepsExistingFields(t *testing.T) {
	th := Default(uuid.New())
	merged := th.Merge(&Theme{PrimaryColor: "#000000", Layout: LayoutDark})

	assert.Equal(t, "#000000", merged.PrimaryColor)
	assert.Equal(t, LayoutDark, merged.Layout)
	// Untouched fields survive the merge.
	assert.Equal(t, "#14b8a6", merged.SecondaryColor)
	assert.Equal(t, "Inter", merged.FontFamily)
}

func TestMerge_EmptyPatchIsANoop(t *testing.T) {
	th := Default(uuid.New())
	before := *th

	merged := th.Merge(&Theme{})
	assert.Equal(t, before.PrimaryColor, merged.PrimaryColor)
	assert.Equal(t, before.Layout, merged.Layout)
}
