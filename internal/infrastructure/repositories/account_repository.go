package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID               string  `gorm:"primaryKey;size:36"`
	Name             string  `gorm:"size:255"`
	Email            string  `gorm:"uniqueIndex;size:255"`
	PasswordHash     string  `gorm:"column:password"`
	Verified         bool    `gorm:"index"`
	VerificationCode *string `gorm:"size:6"`
	IsAdmin          bool    `gorm:"index"`
	ProfileImage     string
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "users"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.CreatedAt = dbAccount.CreatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	return r.db.WithContext(ctx).Save(dbAccount).Error
}

// MarkVerified implements domain.AccountRepository. The conditional
// WHERE makes the verified flip a compare-and-set: of two concurrent
// verifications exactly one sees RowsAffected == 1.
func (r *AccountRepositoryImpl) MarkVerified(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&DBAccount{}).
		Where("id = ? AND verified = ?", id, false).
		Updates(map[string]interface{}{"verified": true, "verification_code": nil})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete implements domain.AccountRepository
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBAccount{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List implements domain.AccountRepository
func (r *AccountRepositoryImpl) List(ctx context.Context) ([]*domain.Account, error) {
	var dbAccounts []DBAccount
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbAccounts).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(dbAccounts))
	for i := range dbAccounts {
		accounts = append(accounts, r.dbToDomain(&dbAccounts[i]))
	}
	return accounts, nil
}

// Count implements domain.AccountRepository
func (r *AccountRepositoryImpl) Count(ctx context.Context) (total, verified, admins int64, err error) {
	if err = r.db.WithContext(ctx).Model(&DBAccount{}).Count(&total).Error; err != nil {
		return
	}
	if err = r.db.WithContext(ctx).Model(&DBAccount{}).Where("verified = ?", true).Count(&verified).Error; err != nil {
		return
	}
	err = r.db.WithContext(ctx).Model(&DBAccount{}).Where("is_admin = ?", true).Count(&admins).Error
	return
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:               account.ID,
		Name:             account.Name,
		Email:            account.Email,
		PasswordHash:     account.PasswordHash,
		Verified:         account.Verified,
		VerificationCode: account.VerificationCode,
		IsAdmin:          account.IsAdmin,
		ProfileImage:     account.ProfileImage,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:               dbAccount.ID,
		Name:             dbAccount.Name,
		Email:            dbAccount.Email,
		PasswordHash:     dbAccount.PasswordHash,
		Verified:         dbAccount.Verified,
		VerificationCode: dbAccount.VerificationCode,
		IsAdmin:          dbAccount.IsAdmin,
		ProfileImage:     dbAccount.ProfileImage,
		CreatedAt:        dbAccount.CreatedAt,
		UpdatedAt:        dbAccount.UpdatedAt,
	}
}
