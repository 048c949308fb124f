package domain

import "time"

// Account represents a registered portal user.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Verified     bool
	// VerificationCode is present only while the account is unverified.
	// Once verified it is cleared and never reused.
	VerificationCode *string
	IsAdmin          bool
	ProfileImage     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicUser is the safe projection of an Account: no password hash,
// no verification code. This is the only account shape that ever
// leaves the server.
type PublicUser struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Verified     bool      `json:"verified"`
	IsAdmin      bool      `json:"isAdmin"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns the safe projection of the account.
func (a *Account) Public() *PublicUser {
	return &PublicUser{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Verified:     a.Verified,
		IsAdmin:      a.IsAdmin,
		ProfileImage: a.ProfileImage,
		CreatedAt:    a.CreatedAt,
	}
}

// Session is the client-held session record. Expiry is epoch
// milliseconds, 24 hours from issuance.
type Session struct {
	User   *PublicUser `json:"user"`
	Expiry int64       `json:"expiry"`
}

// ExternalAuthor marks papers that did not originate from a portal account.
const ExternalAuthor = "external"

// ResearchPaper is a bulletin-board entry with an uploaded artifact.
// AuthorID may hold ExternalAuthor for records imported from the
// literature search rather than uploaded by an account.
type ResearchPaper struct {
	ID         string     `json:"_id"`
	Title      string     `json:"title"`
	Abstract   string     `json:"abstract,omitempty"`
	Tags       []string   `json:"tags"`
	AuthorID   string     `json:"authorId"`
	AuthorName string     `json:"authorName,omitempty"`
	FileURL    string     `json:"fileUrl"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// ActivityEntry is an append-only audit record. UserID is empty for
// system-initiated actions.
type ActivityEntry struct {
	ID        string    `json:"_id"`
	Action    string    `json:"action"`
	UserID    string    `json:"userId,omitempty"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EnrichedActivityEntry is an activity record joined with the acting
// user's current name and email for the admin console.
type EnrichedActivityEntry struct {
	ActivityEntry
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	VerifiedUsers int64 `json:"verifiedUsers"`
	AdminUsers    int64 `json:"adminUsers"`
	TotalPapers   int64 `json:"totalPapers"`
	TotalActivity int64 `json:"totalActivity"`
}

// PaperUpdate carries the optional fields of a paper edit. Nil fields
// are left untouched.
type PaperUpdate struct {
	Title    *string
	Abstract *string
	Tags     []string
}

// ProfileUpdate carries the optional fields of a profile edit.
type ProfileUpdate struct {
	Name            *string
	CurrentPassword *string
	NewPassword     *string
}
