package services

import "github.com/surveyforge/question-server/models"

// DecodedRow is one respondent's submission with every present entry resolved
// to display text, keyed by component fe_id and prefixed with the answer id.
type DecodedRow map[string]interface{}

// StatItem is one histogram bucket: a distinct submitted code resolved to its
// display label.
type StatItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// questionFinder and answerLister are the slices of QuestionService and
// AnswerService the stat layer needs; tests substitute in-memory fakes.
type questionFinder interface {
	FindOne(id uint) (*models.Questionnaire, error)
}

type answerLister interface {
	FindAll(questionID uint, page ListPage) ([]models.AnswerRecord, error)
	Count(questionID uint) (int64, error)
}

// StatService recomputes answer reports on every request; there is no cache
// or materialized view.
type StatService struct {
	questions questionFinder
	answers   answerLister
}

func NewStatService(questions questionFinder, answers answerLister) *StatService {
	return &StatService{questions: questions, answers: answers}
}

// GetQuestionStatListAndCount returns one page of decoded respondent rows and
// the total submission count. A zero questionID, a missing questionnaire and
// an empty answer set all yield the same empty result.
//
// The total comes from a separate query than the page contents; submissions
// arriving between the two reads can make them disagree. Accepted tradeoff.
func (s *StatService) GetQuestionStatListAndCount(questionID uint, page ListPage) ([]DecodedRow, int64, error) {
	empty := []DecodedRow{}
	if questionID == 0 {
		return empty, 0, nil
	}
	q, err := s.questions.FindOne(questionID)
	if err != nil {
		return nil, 0, err
	}
	if q == nil {
		return empty, 0, nil
	}
	total, err := s.answers.Count(questionID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return empty, 0, nil
	}
	records, err := s.answers.FindAll(questionID, page)
	if err != nil {
		return nil, 0, err
	}

	list := make([]DecodedRow, 0, len(records))
	for _, rec := range records {
		row := DecodedRow{"id": rec.ID}
		for _, entry := range rec.AnswerList {
			comp := q.FindComponent(entry.ComponentFeID)
			if comp == nil {
				// Schema edited after submission: the orphaned entry is
				// dropped from the row, not reported as an error.
				continue
			}
			row[comp.FeID] = ResolveText(comp, entry.Value)
		}
		list = append(list, row)
	}
	return list, total, nil
}

// GetComponentStat builds the value histogram for one choice component.
// Buckets appear in first-seen order across submissions; each code of a
// multi-select entry counts once per occurrence. Anything that cannot be
// histogrammed (missing ids, missing component, non-choice type, no answers)
// yields an empty stat, never an error.
func (s *StatService) GetComponentStat(questionID uint, componentFeID string) ([]StatItem, error) {
	empty := []StatItem{}
	if questionID == 0 || componentFeID == "" {
		return empty, nil
	}
	q, err := s.questions.FindOne(questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return empty, nil
	}
	comp := q.FindComponent(componentFeID)
	if comp == nil {
		return empty, nil
	}
	if comp.Type != models.TypeRadio && comp.Type != models.TypeCheckbox {
		return empty, nil
	}
	total, err := s.answers.Count(questionID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return empty, nil
	}
	// Exact counts need the full answer set in one page. Fine for the bursty
	// statistics view; revisit with server-side aggregation if volumes grow.
	records, err := s.answers.FindAll(questionID, ListPage{Page: 1, PageSize: int(total)})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		for _, entry := range rec.AnswerList {
			if entry.ComponentFeID != componentFeID {
				continue
			}
			for _, code := range entry.Value {
				if _, seen := counts[code]; !seen {
					order = append(order, code)
				}
				counts[code]++
			}
		}
	}

	stat := make([]StatItem, 0, len(order))
	for _, code := range order {
		stat = append(stat, StatItem{
			Name:  ResolveText(comp, []string{code}),
			Count: counts[code],
		})
	}
	return stat, nil
}
