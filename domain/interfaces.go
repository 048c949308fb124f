package domain

import (
	"context"
	"io"
	"time"
)

// AccountRepository defines account data access operations.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	// MarkVerified flips verified and clears the code only if the
	// account is still unverified. Returns false when another writer
	// got there first.
	MarkVerified(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Account, error)
	Count(ctx context.Context) (total, verified, admins int64, err error)
}

// PaperRepository defines research paper data access operations.
type PaperRepository interface {
	Create(ctx context.Context, paper *ResearchPaper) error
	FindByID(ctx context.Context, id string) (*ResearchPaper, error)
	Update(ctx context.Context, paper *ResearchPaper) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, authorID string) ([]*ResearchPaper, error)
	Count(ctx context.Context) (int64, error)
}

// ActivityRepository defines audit log data access operations.
// Entries are append-only.
type ActivityRepository interface {
	Append(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, limit int) ([]*ActivityEntry, error)
	Count(ctx context.Context) (int64, error)
}

// AccountService defines the account lifecycle business logic.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*PublicUser, error)
	VerifyAccount(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*PublicUser, error)
	UpdateProfile(ctx context.Context, accountID string, upd ProfileUpdate, image io.Reader, imageName string) (*PublicUser, error)
	SetAdminRole(ctx context.Context, targetID string, isAdmin bool) (*PublicUser, error)
	DeleteAccount(ctx context.Context, targetID string) error
}

// PaperService defines research paper business logic with the
// ownership check applied to every mutation.
type PaperService interface {
	Create(ctx context.Context, callerID, authorName, title, abstract string, tags []string, file io.Reader, filename string) (*ResearchPaper, error)
	Edit(ctx context.Context, paperID, callerID string, upd PaperUpdate, file io.Reader, filename string) (*ResearchPaper, error)
	Delete(ctx context.Context, paperID, callerID string) error
	List(ctx context.Context, authorID string) ([]*ResearchPaper, error)
}

// VerificationService owns code generation, the resend throttle and
// the bounded attempt counter.
type VerificationService interface {
	NewCode(ctx context.Context, email string) (string, error)
	RecordAttempt(ctx context.Context, email string) error
	ClearAttempts(ctx context.Context, email string)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService signs and validates session tokens.
type TokenService interface {
	Generate(accountID string, isAdmin bool) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// TokenClaims are the verified claims of a session token.
type TokenClaims struct {
	AccountID string
	IsAdmin   bool
	IssuedAt  int64
	ExpiresAt int64
}

// MailSender delivers transactional email. Delivery is synchronous;
// callers decide what a failure means.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// BlobStore persists uploaded artifacts and returns a fetchable URL.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// ActivityRecorder appends audit entries without ever failing the
// primary operation.
type ActivityRecorder interface {
	Record(action, userID, details string)
}

// Clock abstracts time for session expiry tests.
type Clock interface {
	Now() time.Time
}
