package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultProfile(t *testing.T) {
	t.Parallel()

	p := NewDefaultProfile("123456", "Alice", "key-1")

	assert.Equal(t, "123456", p.UserID)
	assert.Equal(t, "key-1", p.PublicLinkKey)
	assert.Equal(t, "Alice", p.About.Name)
	assert.Equal(t, DefaultAboutBio, p.About.Bio)
	assert.Equal(t, DefaultAboutImage, p.About.Image)

	require.NotNil(t, p.Education)
	require.NotNil(t, p.Learnings)
	require.NotNil(t, p.Projects)
	require.NotNil(t, p.Interests)
	require.NotNil(t, p.Wishlist)
	require.NotNil(t, p.Tours)
	require.NotNil(t, p.BestPics)
	assert.Empty(t, p.Education)
}

func TestProfile_Public_StripsUserID(t *testing.T) {
	t.Parallel()

	p := NewDefaultProfile("123456", "Alice", "key-1")
	pub := p.Public()

	assert.Empty(t, pub.UserID)
	assert.Equal(t, "key-1", pub.PublicLinkKey)
	// original untouched
	assert.Equal(t, "123456", p.UserID)
}

func TestProfile_NormalizeItemIDs_AssignsMissing(t *testing.T) {
	t.Parallel()

	p := Profile{
		Interests: []InterestItem{
			{ID: 0, Text: "hiking"},
			{ID: 0, Text: "chess"},
		},
	}
	p.NormalizeItemIDs()

	assert.Equal(t, 1, p.Interests[0].ID)
	assert.Equal(t, 2, p.Interests[1].ID)
}

func TestProfile_NormalizeItemIDs_KeepsExistingAndFillsFromMax(t *testing.T) {
	t.Parallel()

	p := Profile{
		Education: []EducationItem{
			{ID: 2, Name: "school"},
			{ID: 7, Name: "college"},
			{ID: 0, Name: "degree"},
		},
	}
	p.NormalizeItemIDs()

	assert.Equal(t, 2, p.Education[0].ID)
	assert.Equal(t, 7, p.Education[1].ID)
	assert.Equal(t, 8, p.Education[2].ID)
}

func TestProfile_NormalizeItemIDs_RepairsDuplicates(t *testing.T) {
	t.Parallel()

	p := Profile{
		Wishlist: []WishlistItem{
			{ID: 3, Text: "a"},
			{ID: 3, Text: "b"},
			{ID: 3, Text: "c"},
		},
	}
	p.NormalizeItemIDs()

	assert.Equal(t, 3, p.Wishlist[0].ID)
	assert.Equal(t, 4, p.Wishlist[1].ID)
	assert.Equal(t, 5, p.Wishlist[2].ID)
}

func TestProfile_NormalizeItemIDs_ListsAreIndependent(t *testing.T) {
	t.Parallel()

	p := Profile{
		Interests: []InterestItem{{ID: 0, Text: "x"}},
		Tours:     []TourItem{{ID: 0, Place: "Paris"}},
	}
	p.NormalizeItemIDs()

	assert.Equal(t, 1, p.Interests[0].ID)
	assert.Equal(t, 1, p.Tours[0].ID)
}

func TestProfile_NormalizeItemIDs_Idempotent(t *testing.T) {
	t.Parallel()

	p := Profile{
		Projects: []ProjectItem{
			{ID: 1, Name: "a"},
			{ID: 2, Name: "b"},
		},
	}
	p.NormalizeItemIDs()
	p.NormalizeItemIDs()

	assert.Equal(t, 1, p.Projects[0].ID)
	assert.Equal(t, 2, p.Projects[1].ID)
}
