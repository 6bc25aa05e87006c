package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SettingsType scopes a settings record to the whole deployment or one clinic.
type SettingsType string

const (
	SettingsTypeGlobal SettingsType = "global"
	SettingsTypeClinic SettingsType = "clinic"
)

func (t SettingsType) Valid() bool {
	return t == SettingsTypeGlobal || t == SettingsTypeClinic
}

// Settings holds a free-form configuration map. OwnerID is set only for
// clinic-scoped records.
type Settings struct {
	Base
	Type    SettingsType      `gorm:"size:20;not null;index" json:"type"`
	OwnerID *uuid.UUID        `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Config  datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"config"`
}

func (Settings) TableName() string {
	return "settings"
}
