package model

// swagger:model Department
type Department struct {
	BaseModel
	// Code is the stable external identifier baked into QR assets.
	// It must not change once a QR image references it.
	Code   string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"size:255;not null" json:"name"`
	QRCode string `gorm:"size:255" json:"qrCode"`
}

func (Department) TableName() string {
	return "departments"
}
