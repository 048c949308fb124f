package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/tasks"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	verifySvc   domain.VerificationService
	mailSender  domain.MailSender
	blobStore   domain.BlobStore
	recorder    domain.ActivityRecorder
	runner      *tasks.Runner
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	verifySvc domain.VerificationService,
	mailSender domain.MailSender,
	blobStore domain.BlobStore,
	recorder domain.ActivityRecorder,
	runner *tasks.Runner,
) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		verifySvc:   verifySvc,
		mailSender:  mailSender,
		blobStore:   blobStore,
		recorder:    recorder,
		runner:      runner,
	}
}

// Register implements domain.AccountService. Either the account exists
// and is reachable by its code, or it does not exist at all: a failed
// email delivery rolls the freshly created account back.
func (s *AccountServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil && err != domain.ErrNotFound {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.verifySvc.NewCode(ctx, email)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:             name,
		Email:            email,
		PasswordHash:     hashedPassword,
		Verified:         false,
		VerificationCode: &code,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	subject := "Verify your DeepTech Summit account"
	body := fmt.Sprintf("Hello %s,\n\nYour verification code is: %s\n\nEnter it on the verification page to activate your account.", name, code)
	if err := s.mailSender.Send(ctx, email, subject, body); err != nil {
		// Compensating delete; its own failure is only logged.
		if delErr := s.accountRepo.Delete(ctx, account.ID); delErr != nil {
			log.Printf("REGISTER_ROLLBACK_FAILED: email=%s error=%v", email, delErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}

	s.recorder.Record("User Registered", account.ID, fmt.Sprintf("email=%s", email))
	return account.Public(), nil
}

// VerifyAccount implements domain.AccountService. Retrying after
// success reports ErrAlreadyVerified, never a silent success.
func (s *AccountServiceImpl) VerifyAccount(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return domain.ErrValidation
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if account.Verified {
		return domain.ErrAlreadyVerified
	}

	if err := s.verifySvc.RecordAttempt(ctx, email); err != nil {
		return err
	}

	if account.VerificationCode == nil || *account.VerificationCode != code {
		return domain.ErrInvalidCode
	}

	flipped, err := s.accountRepo.MarkVerified(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if !flipped {
		// A concurrent verification won the compare-and-set.
		return domain.ErrAlreadyVerified
	}

	s.verifySvc.ClearAttempts(ctx, email)
	s.recorder.Record("Account Verified", account.ID, fmt.Sprintf("email=%s", email))
	log.Printf("ACCOUNT_VERIFIED: user_id=%s email=%s timestamp=%s",
		account.ID, email, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// ResendCode implements domain.AccountService. A fresh code replaces
// the stored one; the throttle in the verification service bounds how
// often this can happen.
func (s *AccountServiceImpl) ResendCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.ErrValidation
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if account.Verified {
		return domain.ErrAlreadyVerified
	}

	code, err := s.verifySvc.NewCode(ctx, email)
	if err != nil {
		return err
	}
	account.VerificationCode = &code
	account.UpdatedAt = time.Now()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	subject := "Your new DeepTech Summit verification code"
	body := fmt.Sprintf("Hello %s,\n\nYour new verification code is: %s", account.Name, code)
	if err := s.mailSender.Send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}

	s.recorder.Record("Verification Code Resent", account.ID, fmt.Sprintf("email=%s", email))
	return nil
}

// Login implements domain.AccountService. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if !account.Verified {
		return nil, domain.ErrUnverified
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		s.recorder.Record("Failed Login Attempt", account.ID, fmt.Sprintf("email=%s", email))
		return nil, domain.ErrInvalidCredentials
	}

	s.recorder.Record("User Login", account.ID, fmt.Sprintf("email=%s", email))
	return account.Public(), nil
}

// UpdateProfile implements domain.AccountService. Only supplied,
// changed fields are written. A replaced profile image is cleaned up
// in the background.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error) {
	if accountID == "" {
		return nil, domain.ErrValidation
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	changed := false

	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" && *upd.Name != account.Name {
		account.Name = strings.TrimSpace(*upd.Name)
		changed = true
	}

	if upd.NewPassword != nil && *upd.NewPassword != "" {
		if upd.CurrentPassword == nil || *upd.CurrentPassword == "" {
			return nil, domain.ErrValidation
		}
		if !s.passwordSvc.Verify(account.PasswordHash, *upd.CurrentPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		hashed, err := s.passwordSvc.Hash(*upd.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = hashed
		changed = true
	}

	if image != nil {
		url, err := s.blobStore.Put(ctx, uploadKey("profiles", imageName), image)
		if err != nil {
			return nil, err
		}
		if old := account.ProfileImage; old != "" {
			s.scheduleArtifactDelete(old)
		}
		account.ProfileImage = url
		changed = true
	}

	if changed {
		account.UpdatedAt = time.Now()
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		s.recorder.Record("Profile Updated", account.ID, fmt.Sprintf("email=%s", account.Email))
	}

	return account.Public(), nil
}

// SetAdminRole implements domain.AccountService
func (s *AccountServiceImpl) SetAdminRole(ctx context.Context, targetID string, isAdmin bool) (*domain.PublicUser, error) {
	account, err := s.accountRepo.FindByID(ctx, targetID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if account.IsAdmin != isAdmin {
		account.IsAdmin = isAdmin
		account.UpdatedAt = time.Now()
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
	}
	return account.Public(), nil
}

// DeleteAccount implements domain.AccountService
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, targetID string) error {
	account, err := s.accountRepo.FindByID(ctx, targetID)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if err := s.accountRepo.Delete(ctx, targetID); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if account.ProfileImage != "" {
		s.scheduleArtifactDelete(account.ProfileImage)
	}
	return nil
}

func (s *AccountServiceImpl) scheduleArtifactDelete(url string) {
	s.runner.Submit("artifact-delete", func(ctx context.Context) error {
		return s.blobStore.Delete(ctx, url)
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// uploadKey returns a date-partitioned blob key under the given prefix.
func uploadKey(prefix, filename string) string {
	if filename == "" {
		filename = "upload"
	}
	filename = strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(filename)
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%s-%s", prefix, d.Year(), int(d.Month()), uuid.NewString(), filename)
}
