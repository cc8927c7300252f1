package repository

// User represents a registered person the classifier can learn.
// Rows are immutable after creation and never deleted.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"column:name;size:300"`
	Position string `gorm:"column:position;size:300"`
}

// TableName overrides the default table name.
func (User) TableName() string {
	return "users"
}

// Model represents one published trained classifier. Rows are append-only;
// republishing requires a new version.
type Model struct {
	Version int64  `gorm:"column:version;primaryKey;autoIncrement:false"`
	URL     string `gorm:"column:url;size:255"`
	Users   []User `gorm:"-"`
}

// TableName overrides the default table name.
func (Model) TableName() string {
	return "models"
}

// ModelUser maps a model version to one user it can recognize. The registry
// maintains this table explicitly on append; there is no ORM-managed
// association behind it.
type ModelUser struct {
	UserID       uint  `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ModelVersion int64 `gorm:"column:model_version;primaryKey;autoIncrement:false"`
}

// TableName overrides the default table name.
func (ModelUser) TableName() string {
	return "users_models"
}
