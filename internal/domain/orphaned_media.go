package domain

// OrphanedMedia records a storage key whose best-effort remote deletion
// failed while the owning row was already removed. The cleanup job retries
// these keys on a schedule.
type OrphanedMedia struct {
	BaseModel
	StorageKey string `gorm:"type:text;not null;uniqueIndex:uq_orphaned_media_key" json:"storageKey"`
	Attempts   int    `gorm:"not null;default:0" json:"attempts"`
}

// TableName specifies the table name for OrphanedMedia
func (OrphanedMedia) TableName() string {
	return "orphaned_media"
}
