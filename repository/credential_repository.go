package repository

import (
	"context"
	"errors"
	"strings"

	"virtual-healthcare/models"

	"gorm.io/gorm"
)

// CredentialRepository is the gorm-backed credential collection. Lookups
// return (nil, nil) when no row matches so callers do not need to know
// gorm's not-found sentinel.
type CredentialRepository struct {
	DB *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{DB: db}
}

func (r *CredentialRepository) FindAll(ctx context.Context) ([]models.Credential, error) {
	var creds []models.Credential
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *CredentialRepository) FindByID(ctx context.Context, id int) (*models.Credential, error) {
	var cred models.Credential
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *CredentialRepository) FindByDoctorID(ctx context.Context, doctorID int) (*models.Credential, error) {
	var cred models.Credential
	err := r.DB.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// FindByUsername matches the stored (already lowercased) username.
func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*models.Credential, error) {
	var cred models.Credential
	err := r.DB.WithContext(ctx).Where("username = ?", strings.ToLower(username)).First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// FindByUsernameExcluding is the uniqueness probe for updates: any other
// record holding the username collides.
func (r *CredentialRepository) FindByUsernameExcluding(ctx context.Context, username string, excludeID int) (*models.Credential, error) {
	var cred models.Credential
	err := r.DB.WithContext(ctx).
		Where("username = ? AND id <> ?", strings.ToLower(username), excludeID).
		First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *CredentialRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.DB.WithContext(ctx).
		Model(&models.Credential{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}

func (r *CredentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	return r.DB.WithContext(ctx).Create(cred).Error
}

func (r *CredentialRepository) Save(ctx context.Context, cred *models.Credential) error {
	return r.DB.WithContext(ctx).Save(cred).Error
}

func (r *CredentialRepository) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Credential{}).Error
}

func (r *CredentialRepository) DeleteAll(ctx context.Context) error {
	return r.DB.WithContext(ctx).Where("1 = 1").Delete(&models.Credential{}).Error
}

// DeleteByDoctorID backs the cascade when a doctor record is removed.
func (r *CredentialRepository) DeleteByDoctorID(ctx context.Context, doctorID int) error {
	return r.DB.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&models.Credential{}).Error
}
