package domain

import "time"

// Kelas kelompok follows the three-tier classification used by the
// fisheries extension service.
const (
	KelasPemula = "pemula"
	KelasMadya  = "madya"
	KelasUtama  = "utama"
)

// KelompokNelayan is a registered fisherman group. NIBKelompok is the
// business registration number and acts as the natural key; the generated
// ID remains the storage primary key.
type KelompokNelayan struct {
	BaseModel
	NamaKelompok       string     `gorm:"size:150;not null" json:"nama_kelompok"`
	NIBKelompok        string     `gorm:"column:nib_kelompok;size:50;uniqueIndex;not null" json:"nib_kelompok"`
	AlamatKelompok     string     `gorm:"size:255" json:"alamat_kelompok"`
	JumlahAnggota      int        `json:"jumlah_anggota"`
	KelasKelompok      string     `gorm:"size:20" json:"kelas_kelompok"`
	TanggalPembentukan *time.Time `json:"tanggal_pembentukan"`
	IsActive           *bool      `json:"is_active"`

	OrganisasiID *uint `gorm:"index" json:"organisasi_id"`
	UPTID        *uint `gorm:"column:upt_id;index" json:"upt_id"`
	PenyuluhID   *uint `gorm:"index" json:"penyuluh_id"`

	// Display-only joins; referential integrity is the store's concern.
	Organisasi *Organisasi          `gorm:"foreignKey:OrganisasiID" json:"organisasi,omitempty"`
	UPT        *UnitPelaksanaTeknis `gorm:"foreignKey:UPTID" json:"upt,omitempty"`
	Penyuluh   *Penyuluh            `gorm:"foreignKey:PenyuluhID" json:"penyuluh,omitempty"`
}

// TableName pins the plural-free Indonesian table name.
func (KelompokNelayan) TableName() string { return "kelompok_nelayan" }
