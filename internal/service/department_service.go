package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const qrImageSize = 512

type DepartmentService struct {
	DeptRepo *repository.DepartmentRepository
	Storage  *StorageService
	Cfg      *config.Config
}

func NewDepartmentService(deptRepo *repository.DepartmentRepository, storage *StorageService, cfg *config.Config) *DepartmentService {
	return &DepartmentService{DeptRepo: deptRepo, Storage: storage, Cfg: cfg}
}

func (s *DepartmentService) List() ([]model.Department, error) {
	return s.DeptRepo.List()
}

func (s *DepartmentService) FindByCode(code string) (*model.Department, error) {
	dept, err := s.DeptRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}

type DepartmentRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (s *DepartmentService) Create(ctx context.Context, req DepartmentRequest) (*model.Department, error) {
	dept := &model.Department{Code: req.Code, Name: req.Name}
	if err := s.DeptRepo.Create(dept); err != nil {
		return nil, err
	}

	if err := s.GenerateQR(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Update changes the display name only. The code is a stable external
// identifier baked into printed QR posters and never changes.
func (s *DepartmentService) Update(id uint, name string) (*model.Department, error) {
	dept, err := s.DeptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	dept.Name = name
	if err := s.DeptRepo.Update(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Delete refuses to remove a department that already has submissions.
func (s *DepartmentService) Delete(id uint) error {
	if _, err := s.DeptRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDepartmentNotFound
		}
		return err
	}

	count, err := s.DeptRepo.CountResponses(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrDepartmentHasResponses
	}
	return s.DeptRepo.Delete(id)
}

// GenerateQR renders the department's survey link as a PNG, stores it via
// the configured provider and records the asset reference.
func (s *DepartmentService) GenerateQR(ctx context.Context, dept *model.Department) error {
	link := fmt.Sprintf("%s/survey?dept=%s", s.Cfg.Survey.PublicBaseURL, url.QueryEscape(dept.Code))
	png, err := qrcode.Encode(link, qrcode.Medium, qrImageSize)
	if err != nil {
		return err
	}

	filename := dept.Code + ".png"
	path, err := s.Storage.UploadBytes(ctx, filename, png, "image/png")
	if err != nil {
		return err
	}

	dept.QRCode = path
	return s.DeptRepo.UpdateQRCode(dept.ID, path)
}

func (s *DepartmentService) RegenerateQR(ctx context.Context, id uint) (*model.Department, error) {
	dept, err := s.DeptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	if err := s.GenerateQR(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// CentralQRFilename is the asset name of the survey landing page QR.
const CentralQRFilename = "central.png"

// EnsureCentralQR regenerates the central landing-page QR. Called once at
// startup; regeneration is idempotent since the encoded link only depends
// on the configured base URL.
func (s *DepartmentService) EnsureCentralQR(ctx context.Context) error {
	link := fmt.Sprintf("%s/survey", s.Cfg.Survey.PublicBaseURL)
	png, err := qrcode.Encode(link, qrcode.Medium, qrImageSize)
	if err != nil {
		return err
	}
	_, err = s.Storage.UploadBytes(ctx, CentralQRFilename, png, "image/png")
	return err
}
