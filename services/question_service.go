package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/surveyforge/question-server/models"
	"github.com/surveyforge/question-server/utils"
)

// ListFilter selects questionnaires for list and count queries. Keyword is a
// case-insensitive substring match on the title; IsStar narrows only when
// set; Author and IsDeleted always match exactly.
type ListFilter struct {
	Author    string
	Keyword   string
	IsDeleted bool
	IsStar    bool
}

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// Create inserts a questionnaire seeded with a single question-info component.
func (s *QuestionService) Create(author string) (*models.Questionnaire, error) {
	q := &models.Questionnaire{
		Title:         "Untitled questionnaire",
		Desc:          "Questionnaire description",
		Author:        author,
		ComponentList: models.ComponentList{defaultInfoComponent()},
	}
	if err := s.db.Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func defaultInfoComponent() models.Component {
	props, _ := json.Marshal(models.InfoProps{
		Title: "Untitled questionnaire",
		Desc:  "Questionnaire description",
	})
	return models.Component{
		FeID:  utils.NewFeID(),
		Type:  models.TypeInfo,
		Title: "Questionnaire info",
		Props: props,
	}
}

// FindOne returns (nil, nil) when the id does not exist. Callers treat a
// missing questionnaire as an empty result, never as a failure.
func (s *QuestionService) FindOne(id uint) (*models.Questionnaire, error) {
	if id == 0 {
		return nil, nil
	}
	var q models.Questionnaire
	if err := s.db.First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) listQuery(f ListFilter) *gorm.DB {
	tx := s.db.Model(&models.Questionnaire{}).
		Where("author = ?", f.Author).
		Where("is_deleted = ?", f.IsDeleted)
	if f.IsStar {
		tx = tx.Where("is_star = ?", true)
	}
	if f.Keyword != "" {
		tx = tx.Where("title ILIKE ?", "%"+f.Keyword+"%")
	}
	return tx
}

// FindAllList returns one page of questionnaires, newest first.
func (s *QuestionService) FindAllList(f ListFilter, page ListPage) ([]models.Questionnaire, error) {
	var list []models.Questionnaire
	err := s.listQuery(f).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&list).Error
	return list, err
}

// Count runs the same filter without pagination.
func (s *QuestionService) Count(f ListFilter) (int64, error) {
	var n int64
	err := s.listQuery(f).Count(&n).Error
	return n, err
}

// UpdatePatch carries the mutable questionnaire fields; nil means unchanged.
type UpdatePatch struct {
	Title         *string
	Desc          *string
	Js            *string
	Css           *string
	IsStar        *bool
	IsPublished   *bool
	IsDeleted     *bool
	ComponentList *models.ComponentList
}

func (s *QuestionService) Update(id uint, author string, patch UpdatePatch) error {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Desc != nil {
		updates["desc"] = *patch.Desc
	}
	if patch.Js != nil {
		updates["js"] = *patch.Js
	}
	if patch.Css != nil {
		updates["css"] = *patch.Css
	}
	if patch.IsStar != nil {
		updates["is_star"] = *patch.IsStar
	}
	if patch.IsPublished != nil {
		updates["is_published"] = *patch.IsPublished
	}
	if patch.IsDeleted != nil {
		updates["is_deleted"] = *patch.IsDeleted
	}
	if patch.ComponentList != nil {
		updates["component_list"] = *patch.ComponentList
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Questionnaire{}).
		Where("id = ? AND author = ?", id, author).
		Updates(updates).Error
}

// Delete flags the questionnaire as deleted; nothing is ever hard-deleted.
func (s *QuestionService) Delete(id uint, author string) error {
	return s.db.Model(&models.Questionnaire{}).
		Where("id = ? AND author = ?", id, author).
		Update("is_deleted", true).Error
}

func (s *QuestionService) DeleteMany(ids []uint, author string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Model(&models.Questionnaire{}).
		Where("id IN ? AND author = ?", ids, author).
		Update("is_deleted", true).Error
}

// Duplicate clones a questionnaire under a new identity. Publish and star
// flags reset and every fe_id is regenerated, so answers to the clone can
// never correlate with the original. Returns (nil, nil) when the source does
// not exist or belongs to someone else.
func (s *QuestionService) Duplicate(id uint, author string) (*models.Questionnaire, error) {
	src, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if src == nil || src.Author != author {
		return nil, nil
	}
	clone := &models.Questionnaire{
		Title:         src.Title + " (copy)",
		Desc:          src.Desc,
		Js:            src.Js,
		Css:           src.Css,
		Author:        author,
		ComponentList: CloneComponents(src.ComponentList),
	}
	if err := s.db.Create(clone).Error; err != nil {
		return nil, err
	}
	return clone, nil
}

// CloneComponents copies a component list with fresh fe_ids, preserving order
// and every other descriptor field.
func CloneComponents(list models.ComponentList) models.ComponentList {
	out := make(models.ComponentList, len(list))
	for i, c := range list {
		c.FeID = utils.NewFeID()
		out[i] = c
	}
	return out
}
