package models

// ConnectionProfile is a saved set of credentials for one external database.
// Profiles are owned by the surrounding application; the gateway only reads them
// and records the outcome of connection tests in Status.
type ConnectionProfile struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name" json:"name"`                          // Display name
	DBType      string `gorm:"column:db_type" json:"db_type"`                    // mysql, postgresql, sqlserver, mongodb
	Host        string `gorm:"column:host" json:"host"`                          // Server host name or IP
	Port        int    `gorm:"column:port" json:"port"`                          // Server port, 0 means engine default
	Username    string `gorm:"column:username" json:"username"`                  // Authentication user
	Password    string `gorm:"column:password" json:"-"`                         // Never serialized back to callers
	Database    string `gorm:"column:database_name" json:"database_name"`        // Target database
	Status      string `gorm:"column:status;default:disabled" json:"status"`     // enabled/disabled, set by connection tests
	Description string `gorm:"column:description" json:"description,omitempty"` // Free text
}

// profileTable can be overridden at startup when the saved connections live in a
// differently named table.
var profileTable = "connections"

// SetProfileTableName changes the table used for ConnectionProfile lookups.
func SetProfileTableName(name string) {
	if name != "" {
		profileTable = name
	}
}

// TableName specifies the table name for GORM.
func (ConnectionProfile) TableName() string {
	return profileTable
}

// EngineKind returns the parsed stored engine kind.
func (p *ConnectionProfile) EngineKind() (EngineKind, bool) {
	return ParseEngineKind(p.DBType)
}

// Connection status values written by connection tests.
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)
