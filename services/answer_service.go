package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/surveyforge/question-server/models"
)

// ErrMissingQuestionID rejects submissions that do not reference a
// questionnaire. Surfaced to the caller as a validation failure.
var ErrMissingQuestionID = errors.New("answer: questionId is required")

type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

// Create persists a submission verbatim. The answer list is not validated
// against the questionnaire schema; a dangling componentFeId is accepted and
// dealt with at read time.
func (s *AnswerService) Create(rec *models.AnswerRecord) error {
	if rec.QuestionID == 0 {
		return ErrMissingQuestionID
	}
	if rec.AnswerList == nil {
		rec.AnswerList = models.AnswerList{}
	}
	return s.db.Create(rec).Error
}

// FindAll returns one page of submissions in insertion order.
func (s *AnswerService) FindAll(questionID uint, page ListPage) ([]models.AnswerRecord, error) {
	var list []models.AnswerRecord
	err := s.db.Where("question_id = ?", questionID).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&list).Error
	return list, err
}

func (s *AnswerService) Count(questionID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.AnswerRecord{}).
		Where("question_id = ?", questionID).
		Count(&n).Error
	return n, err
}
