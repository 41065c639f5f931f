package model

import "context"

// ProfileStore defines persistence operations for profile documents.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	GetByPublicLinkKey(ctx context.Context, key string) (Profile, error)
	Replace(ctx context.Context, profile Profile) (Profile, error)
}

// About is the singleton headline section of a profile.
type About struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// EducationItem is one entry of the education section.
type EducationItem struct {
	ID    int    `json:"id"`
	Level string `json:"level"`
	Name  string `json:"name"`
	Year  string `json:"year"`
	Grade string `json:"grade"`
}

// LearningItem is one certificate or course entry.
type LearningItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stack string `json:"stack"`
	Desc  string `json:"desc"`
	Image string `json:"image"`
}

// InterestItem is one free-form interest entry.
type InterestItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// WishlistItem is one wishlist entry.
type WishlistItem struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// TourItem is one travel entry.
type TourItem struct {
	ID    int    `json:"id"`
	Place string `json:"place"`
	Date  string `json:"date"`
	Image string `json:"image"`
}

// PicItem is one entry of the photo gallery section.
type PicItem struct {
	ID      int    `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// Profile is the full structured document owned by one account.
//
// UserID equals the owning account's secret id and PublicLinkKey grants
// unauthenticated read access; both are immutable after creation. All other
// fields are replaced wholesale on update.
type Profile struct {
	UserID        string          `json:"userId,omitempty"`
	PublicLinkKey string          `json:"publicLinkKey,omitempty"`
	About         About           `json:"about"`
	Education     []EducationItem `json:"education"`
	Learnings     []LearningItem  `json:"learnings"`
	Projects      []ProjectItem   `json:"projects"`
	Interests     []InterestItem  `json:"interests"`
	Wishlist      []WishlistItem  `json:"wishlist"`
	Tours         []TourItem      `json:"tours"`
	BestPics      []PicItem       `json:"bestPics"`
}

// PublicProfile is the response of the public share view. It carries the
// owner's display name and the sanitized document, nothing else.
type PublicProfile struct {
	Username string  `json:"username"`
	Profile  Profile `json:"profile"`
}

// DefaultAboutBio and DefaultAboutImage seed a freshly created profile.
const (
	DefaultAboutBio   = "Bio goes here..."
	DefaultAboutImage = "https://api.dicebear.com/7.x/avataaars/svg?seed=New"
)

// NewDefaultProfile builds the empty profile created alongside a new account.
func NewDefaultProfile(userID, username, publicLinkKey string) Profile {
	return Profile{
		UserID:        userID,
		PublicLinkKey: publicLinkKey,
		About: About{
			Name:  username,
			Bio:   DefaultAboutBio,
			Image: DefaultAboutImage,
		},
		Education: []EducationItem{},
		Learnings: []LearningItem{},
		Projects:  []ProjectItem{},
		Interests: []InterestItem{},
		Wishlist:  []WishlistItem{},
		Tours:     []TourItem{},
		BestPics:  []PicItem{},
	}
}

// Public returns a copy safe for the unauthenticated share view: the owner's
// secret id (UserID) is stripped so the response never reveals it.
func (p Profile) Public() Profile {
	p.UserID = ""
	return p
}

// NormalizeItemIDs assigns ids to list items that lack one and repairs
// duplicates. Ids are unique within their own list only and are assigned as
// max-existing+1, so deletion leaves gaps and freed ids may be reused.
func (p *Profile) NormalizeItemIDs() {
	normalizeIDs(p.Education, func(i *EducationItem) *int { return &i.ID })
	normalizeIDs(p.Learnings, func(i *LearningItem) *int { return &i.ID })
	normalizeIDs(p.Projects, func(i *ProjectItem) *int { return &i.ID })
	normalizeIDs(p.Interests, func(i *InterestItem) *int { return &i.ID })
	normalizeIDs(p.Wishlist, func(i *WishlistItem) *int { return &i.ID })
	normalizeIDs(p.Tours, func(i *TourItem) *int { return &i.ID })
	normalizeIDs(p.BestPics, func(i *PicItem) *int { return &i.ID })
}

func normalizeIDs[T any](items []T, id func(*T) *int) {
	max := 0
	seen := make(map[int]bool, len(items))
	for i := range items {
		v := *id(&items[i])
		if v > 0 && !seen[v] {
			seen[v] = true
			if v > max {
				max = v
			}
		}
	}
	for i := range items {
		v := id(&items[i])
		if *v > 0 && seen[*v] {
			seen[*v] = false // first occurrence keeps its id
			continue
		}
		max++
		*v = max
	}
}
