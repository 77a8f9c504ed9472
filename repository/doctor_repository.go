package repository

import (
	"context"
	"errors"

	"virtual-healthcare/models"

	"gorm.io/gorm"
)

// DoctorRepository reads the doctor roster for the credential subsystem.
// The content-display handlers query doctors through gorm directly; this
// narrower surface exists so the credential service stays testable.
type DoctorRepository struct {
	DB *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{DB: db}
}

func (r *DoctorRepository) FindByID(ctx context.Context, id int) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.DB.WithContext(ctx).Preload("TimeSlots", func(db *gorm.DB) *gorm.DB {
		return db.Order("time_slots.id asc")
	}).Where("id = ?", id).First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindAllSorted(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
