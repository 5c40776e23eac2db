package repository

import (
	"satisfaction_survey_backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) FindByID(id uint) (*model.Department, error) {
	var d model.Department
	err := r.DB.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) FindByCode(code string) (*model.Department, error) {
	var d model.Department
	err := r.DB.Where("code = ?", code).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) List() ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Order("code asc").Find(&ds).Error
	return ds, err
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Save(d).Error
}

func (r *DepartmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Department{}, id).Error
}

// CountResponses reports how many submissions reference the department.
// A nonzero count blocks deletion.
func (r *DepartmentRepository) CountResponses(id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).Where("department_id = ?", id).Count(&count).Error
	return count, err
}

func (r *DepartmentRepository) UpdateQRCode(id uint, path string) error {
	return r.DB.Model(&model.Department{}).Where("id = ?", id).Update("qr_code", path).Error
}
