package domain

import "time"

// Pelatihan lifecycle states.
const (
	PelatihanDirencanakan = "direncanakan"
	PelatihanBerlangsung  = "berlangsung"
	PelatihanSelesai      = "selesai"
	PelatihanDibatalkan   = "dibatalkan"
)

// Pelatihan is a training program held for fisherman groups, usually hosted
// by a technical implementation unit.
type Pelatihan struct {
	BaseModel
	NamaPelatihan  string     `gorm:"size:200;not null" json:"nama_pelatihan"`
	Penyelenggara  string     `gorm:"size:150" json:"penyelenggara"`
	Lokasi         string     `gorm:"size:255" json:"lokasi"`
	TanggalMulai   *time.Time `json:"tanggal_mulai"`
	TanggalSelesai *time.Time `json:"tanggal_selesai"`
	Kuota          int        `json:"kuota"`
	Status         string     `gorm:"size:20" json:"status"`

	UPTID *uint                `gorm:"column:upt_id;index" json:"upt_id"`
	UPT   *UnitPelaksanaTeknis `gorm:"foreignKey:UPTID" json:"upt,omitempty"`
}

func (Pelatihan) TableName() string { return "pelatihan" }
