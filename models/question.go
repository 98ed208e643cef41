package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Component is one entry in a questionnaire's ordered component list.
// FeID is assigned by the editor (or regenerated on duplication) and is only
// unique within a single questionnaire.
type Component struct {
	FeID     string          `json:"fe_id"`
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	IsHidden bool            `json:"isHidden"`
	IsLocked bool            `json:"isLocked"`
	Props    json.RawMessage `json:"props"`
}

// DecodeProps parses the props bag according to the component's type tag.
func (c *Component) DecodeProps() ComponentProps {
	return ParseProps(c.Type, c.Props)
}

// ComponentList is persisted as a single JSONB column so the questionnaire
// keeps its document shape.
type ComponentList []Component

func (l ComponentList) Value() (driver.Value, error) {
	if l == nil {
		l = ComponentList{}
	}
	return json.Marshal(l)
}

func (l *ComponentList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = ComponentList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for ComponentList")
	}
}

type Questionnaire struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string        `gorm:"size:255;not null" json:"title"`
	Desc          string        `gorm:"type:text" json:"desc"`
	Js            string        `gorm:"type:text" json:"js"`
	Css           string        `gorm:"type:text" json:"css"`
	IsDeleted     bool          `gorm:"default:false;index" json:"isDeleted"`
	IsPublished   bool          `gorm:"default:false" json:"isPublished"`
	IsStar        bool          `gorm:"default:false" json:"isStar"`
	Author        string        `gorm:"size:100;index" json:"author"`
	ComponentList ComponentList `gorm:"type:jsonb" json:"componentList"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}

// FindComponent returns the first component whose fe_id matches, or nil when
// the id is not (or no longer) part of this questionnaire.
func (q *Questionnaire) FindComponent(feID string) *Component {
	for i := range q.ComponentList {
		if q.ComponentList[i].FeID == feID {
			return &q.ComponentList[i]
		}
	}
	return nil
}
