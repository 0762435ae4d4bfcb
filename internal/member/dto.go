package member

import "github.com/rizaldyc/simm-backend/internal/model"

// CreateMemberRequest represents the request to register a new member
type CreateMemberRequest struct {
	FullName       string `json:"fullName" validate:"required,min=1,max=100"`
	Gender         string `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
	Whatsapp       string `json:"whatsapp"`
	TTL            string `json:"ttl"`
	Address        string `json:"address"`
	FatherName     string `json:"fatherName"`
	MotherName     string `json:"motherName"`
	BusyStatus     string `json:"busyStatus" validate:"omitempty,oneof=Sekolah Kerja Kuliah 'Kerja Kuliah' Wirausaha"`
	ActivityStatus string `json:"activityStatus" validate:"omitempty,oneof=Aktif Pindah Menikah Meninggal"`
	Education      string `json:"education" validate:"omitempty,oneof=SD SMP SMA SMK D3 D4 S1 S2 S3"`
	Category       string `json:"category" validate:"omitempty,oneof=SMP SMA SMK Pra-Nikah"`
	Group          string `json:"group" validate:"omitempty,oneof='Wonokusumo 1' 'Wonokusumo 2' 'Kedung Mangu' 'Kapas Jaya'"`
}

// UpdateMemberRequest represents a partial-merge update to a member
type UpdateMemberRequest struct {
	FullName       *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=100"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,oneof=Laki-laki Perempuan"`
	Whatsapp       *string `json:"whatsapp,omitempty"`
	TTL            *string `json:"ttl,omitempty"`
	Address        *string `json:"address,omitempty"`
	FatherName     *string `json:"fatherName,omitempty"`
	MotherName     *string `json:"motherName,omitempty"`
	BusyStatus     *string `json:"busyStatus,omitempty" validate:"omitempty,oneof=Sekolah Kerja Kuliah 'Kerja Kuliah' Wirausaha"`
	ActivityStatus *string `json:"activityStatus,omitempty" validate:"omitempty,oneof=Aktif Pindah Menikah Meninggal"`
	Education      *string `json:"education,omitempty" validate:"omitempty,oneof=SD SMP SMA SMK D3 D4 S1 S2 S3"`
	Category       *string `json:"category,omitempty" validate:"omitempty,oneof=SMP SMA SMK Pra-Nikah"`
	Group          *string `json:"group,omitempty" validate:"omitempty,oneof='Wonokusumo 1' 'Wonokusumo 2' 'Kedung Mangu' 'Kapas Jaya'"`
}

// apply merges the non-nil fields onto the member
func (r *UpdateMemberRequest) apply(m *model.Member) {
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Gender != nil {
		m.Gender = model.Gender(*r.Gender)
	}
	if r.Whatsapp != nil {
		m.Whatsapp = *r.Whatsapp
	}
	if r.TTL != nil {
		m.TTL = *r.TTL
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.FatherName != nil {
		m.FatherName = *r.FatherName
	}
	if r.MotherName != nil {
		m.MotherName = *r.MotherName
	}
	if r.BusyStatus != nil {
		m.BusyStatus = model.BusyStatus(*r.BusyStatus)
	}
	if r.ActivityStatus != nil {
		m.ActivityStatus = model.ActivityStatus(*r.ActivityStatus)
	}
	if r.Education != nil {
		m.Education = *r.Education
	}
	if r.Category != nil {
		m.Category = *r.Category
	}
	if r.Group != nil {
		m.Group = *r.Group
	}
}
