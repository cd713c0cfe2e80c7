package entity

import (
	"slices"
	"time"
)

// ViewMode controls how the mobile layout adapts to the screen.
type ViewMode string

const (
	ViewModeAdaptive ViewMode = "adaptive"
	ViewModeCompact  ViewMode = "compact"
	ViewModeSpacious ViewMode = "spacious"
)

// AnimationLevel controls how much motion the interface uses.
type AnimationLevel string

const (
	AnimationLevelMinimal  AnimationLevel = "minimal"
	AnimationLevelNormal   AnimationLevel = "normal"
	AnimationLevelEnhanced AnimationLevel = "enhanced"
)

// Theme selects the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// InterfacePreferences holds per-identity interface behavior settings.
type InterfacePreferences struct {
	OwnerID           string         `json:"owner_id"`
	MobileViewMode    ViewMode       `json:"mobile_view_mode"`
	DashboardWidgets  []string       `json:"dashboard_widgets"`
	AnimationLevel    AnimationLevel `json:"animation_level"`
	GesturesEnabled   bool           `json:"gestures_enabled"`
	VoiceEnabled      bool           `json:"voice_enabled"`
	HapticsEnabled    bool           `json:"haptics_enabled"`
	ShowTutorialHints bool           `json:"show_tutorial_hints"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// UserPreferences holds per-identity notification and display settings.
type UserPreferences struct {
	OwnerID            string    `json:"owner_id"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	ExpiryReminderDays int       `json:"expiry_reminder_days"`
	Theme              Theme     `json:"theme"`
	GroceryStoreLayout string    `json:"grocery_store_layout"`
	AutoAddExpiring    bool      `json:"auto_add_expiring"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultInterfacePreferences returns the built-in interface settings used
// when no remote record exists yet.
func DefaultInterfacePreferences(ownerID string) *InterfacePreferences {
	return &InterfacePreferences{
		OwnerID:           ownerID,
		MobileViewMode:    ViewModeAdaptive,
		DashboardWidgets:  []string{"pantry", "shopping", "expiring"},
		AnimationLevel:    AnimationLevelNormal,
		GesturesEnabled:   true,
		VoiceEnabled:      false,
		HapticsEnabled:    true,
		ShowTutorialHints: true,
	}
}

// DefaultUserPreferences returns the built-in user settings used when no
// remote record exists yet.
func DefaultUserPreferences(ownerID string) *UserPreferences {
	return &UserPreferences{
		OwnerID:            ownerID,
		EmailNotifications: true,
		PushNotifications:  true,
		ExpiryReminderDays: 3,
		Theme:              ThemeAuto,
		GroceryStoreLayout: "",
		AutoAddExpiring:    false,
	}
}

// InterfacePreferencePatch is a partial change set for interface preferences.
// Nil fields leave the current value untouched.
type InterfacePreferencePatch struct {
	MobileViewMode    *ViewMode       `json:"mobile_view_mode,omitempty"`
	DashboardWidgets  []string        `json:"dashboard_widgets,omitempty"`
	AnimationLevel    *AnimationLevel `json:"animation_level,omitempty"`
	GesturesEnabled   *bool           `json:"gestures_enabled,omitempty"`
	VoiceEnabled      *bool           `json:"voice_enabled,omitempty"`
	HapticsEnabled    *bool           `json:"haptics_enabled,omitempty"`
	ShowTutorialHints *bool           `json:"show_tutorial_hints,omitempty"`
}

// Apply merges the patch over prefs and returns the merged copy.
func (p *InterfacePreferencePatch) Apply(prefs *InterfacePreferences) *InterfacePreferences {
	merged := *prefs
	merged.DashboardWidgets = slices.Clone(prefs.DashboardWidgets)

	if p.MobileViewMode != nil {
		merged.MobileViewMode = *p.MobileViewMode
	}
	if p.DashboardWidgets != nil {
		merged.DashboardWidgets = slices.Clone(p.DashboardWidgets)
	}
	if p.AnimationLevel != nil {
		merged.AnimationLevel = *p.AnimationLevel
	}
	if p.GesturesEnabled != nil {
		merged.GesturesEnabled = *p.GesturesEnabled
	}
	if p.VoiceEnabled != nil {
		merged.VoiceEnabled = *p.VoiceEnabled
	}
	if p.HapticsEnabled != nil {
		merged.HapticsEnabled = *p.HapticsEnabled
	}
	if p.ShowTutorialHints != nil {
		merged.ShowTutorialHints = *p.ShowTutorialHints
	}

	return &merged
}

// UserPreferencePatch is a partial change set for user preferences. Nil
// fields leave the current value untouched.
type UserPreferencePatch struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	PushNotifications  *bool   `json:"push_notifications,omitempty"`
	ExpiryReminderDays *int    `json:"expiry_reminder_days,omitempty"`
	Theme              *Theme  `json:"theme,omitempty"`
	GroceryStoreLayout *string `json:"grocery_store_layout,omitempty"`
	AutoAddExpiring    *bool   `json:"auto_add_expiring,omitempty"`
}

// Apply merges the patch over prefs and returns the merged copy.
func (p *UserPreferencePatch) Apply(prefs *UserPreferences) *UserPreferences {
	merged := *prefs

	if p.EmailNotifications != nil {
		merged.EmailNotifications = *p.EmailNotifications
	}
	if p.PushNotifications != nil {
		merged.PushNotifications = *p.PushNotifications
	}
	if p.ExpiryReminderDays != nil {
		merged.ExpiryReminderDays = *p.ExpiryReminderDays
	}
	if p.Theme != nil {
		merged.Theme = *p.Theme
	}
	if p.GroceryStoreLayout != nil {
		merged.GroceryStoreLayout = *p.GroceryStoreLayout
	}
	if p.AutoAddExpiring != nil {
		merged.AutoAddExpiring = *p.AutoAddExpiring
	}

	return &merged
}
