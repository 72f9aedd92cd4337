package entity

import (
	"time"
)

// PassportRecord represents a passport_records row for data transfer between layers.
type PassportRecord struct {
	ID            int64      `json:"id"`
	TaskID        string     `json:"task_id"`
	Status        string     `json:"status"`
	ImagePath     string     `json:"image_path"`
	DocType       string     `json:"doc_type"`
	DocTypeCN     string     `json:"doc_type_cn,omitempty"`
	PassportNo    string     `json:"passport_no,omitempty"`
	Name1         string     `json:"name1,omitempty"`
	Name2         string     `json:"name2,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CountryNameCN string     `json:"country_name_cn,omitempty"`
	VisaNo        string     `json:"visa_no,omitempty"`
	VisaDate      *time.Time `json:"visa_date,omitempty"`
	PassportType  string     `json:"passport_type,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
