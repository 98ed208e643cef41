package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnswerEntry is one respondent's raw value(s) for a single component. The
// fe_id reference may dangle if the schema was edited after submission; the
// stat layer tolerates that at read time.
type AnswerEntry struct {
	ComponentFeID string   `json:"componentFeId"`
	Value         []string `json:"value"`
}

// AnswerList is persisted as a single JSONB column, verbatim as submitted.
type AnswerList []AnswerEntry

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	return json.Marshal(l)
}

func (l *AnswerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = AnswerList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for AnswerList")
	}
}

// AnswerRecord is a write-once fact; there is no update or delete path.
type AnswerRecord struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint       `gorm:"not null;index" json:"questionId"`
	AnswerList AnswerList `gorm:"type:jsonb" json:"answerList"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (AnswerRecord) TableName() string {
	return "answer_records"
}
