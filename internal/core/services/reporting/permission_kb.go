package reporting

import "github.com/dan-coder0/Monitor-Mate/internal/core/domain"

// DefaultPermissionInfo is returned for identifiers the knowledge base
// does not recognize. Lookups never fail.
var DefaultPermissionInfo = domain.PermissionInfo{
	Level:       domain.FactorLow,
	Description: "System permission with low risk",
}

// permissionCatalog maps known permission identifiers to their severity
// and description. High severity covers identity, sensing and
// communication access; medium covers storage, media and contextual
// access; low covers benign infrastructure permissions.
var permissionCatalog = map[string]domain.PermissionInfo{
	// High
	"CAMERA":                  {Level: domain.FactorHigh, Description: "Can take photos and record video"},
	"MICROPHONE":              {Level: domain.FactorHigh, Description: "Can record audio at any time"},
	"LOCATION":                {Level: domain.FactorHigh, Description: "Can access the device's precise location"},
	"LOCATION_ALWAYS":         {Level: domain.FactorHigh, Description: "Can track location even in the background"},
	"CONTACTS":                {Level: domain.FactorHigh, Description: "Can read the contact list"},
	"PHONE":                   {Level: domain.FactorHigh, Description: "Can make and manage phone calls"},
	"SMS":                     {Level: domain.FactorHigh, Description: "Can read and send text messages"},
	"CALL_LOG":                {Level: domain.FactorHigh, Description: "Can read the call history"},
	"HEALTH":                  {Level: domain.FactorHigh, Description: "Can access health and fitness data"},
	"SENSORS":                 {Level: domain.FactorHigh, Description: "Can read body sensor data"},
	"SPEECH":                  {Level: domain.FactorHigh, Description: "Can capture speech input"},
	"MANAGE_EXTERNAL_STORAGE": {Level: domain.FactorHigh, Description: "Can manage all files on the device"},

	// Medium
	"STORAGE":              {Level: domain.FactorMedium, Description: "Can read and write shared storage"},
	"PHOTOS":               {Level: domain.FactorMedium, Description: "Can access the photo library"},
	"VIDEOS":               {Level: domain.FactorMedium, Description: "Can access stored videos"},
	"AUDIO":                {Level: domain.FactorMedium, Description: "Can access stored audio files"},
	"MEDIA_LOCATION":       {Level: domain.FactorMedium, Description: "Can read location metadata from media"},
	"CALENDAR":             {Level: domain.FactorMedium, Description: "Can read and modify calendar events"},
	"REMINDERS":            {Level: domain.FactorMedium, Description: "Can read and modify reminders"},
	"ACTIVITY_RECOGNITION": {Level: domain.FactorMedium, Description: "Can detect physical activity"},
	"BLUETOOTH_SCAN":       {Level: domain.FactorMedium, Description: "Can scan for nearby Bluetooth devices"},
	"BLUETOOTH_CONNECT":    {Level: domain.FactorMedium, Description: "Can connect to paired Bluetooth devices"},
	"NEARBY_WIFI_DEVICES":  {Level: domain.FactorMedium, Description: "Can discover nearby WiFi devices"},

	// Low
	"NOTIFICATIONS":          {Level: domain.FactorLow, Description: "Can post notifications"},
	"INTERNET":               {Level: domain.FactorLow, Description: "Can open network connections"},
	"NETWORK_STATE":          {Level: domain.FactorLow, Description: "Can view network connectivity"},
	"WIFI_STATE":             {Level: domain.FactorLow, Description: "Can view WiFi status"},
	"BLUETOOTH":              {Level: domain.FactorLow, Description: "Can use basic Bluetooth features"},
	"NFC":                    {Level: domain.FactorLow, Description: "Can communicate over NFC"},
	"VIBRATE":                {Level: domain.FactorLow, Description: "Can control the vibrator"},
	"WAKE_LOCK":              {Level: domain.FactorLow, Description: "Can keep the device awake"},
	"FOREGROUND_SERVICE":     {Level: domain.FactorLow, Description: "Can run foreground services"},
	"RECEIVE_BOOT_COMPLETED": {Level: domain.FactorLow, Description: "Can start at device boot"},
	"INSTALL_SHORTCUT":       {Level: domain.FactorLow, Description: "Can install home screen shortcuts"},
}

// PermissionKB answers severity and description lookups for permission
// identifiers, with a guaranteed default for unknown ones.
type PermissionKB struct{}

// NewPermissionKB creates a new permission knowledge base instance.
func NewPermissionKB() *PermissionKB {
	return &PermissionKB{}
}

// Lookup returns the knowledge-base entry for a permission identifier,
// or DefaultPermissionInfo when the identifier is unknown.
func (kb *PermissionKB) Lookup(permission string) domain.PermissionInfo {
	if info, ok := permissionCatalog[permission]; ok {
		return info
	}
	return DefaultPermissionInfo
}

// Size returns the number of known permission identifiers.
func (kb *PermissionKB) Size() int {
	return len(permissionCatalog)
}
