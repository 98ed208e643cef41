package services

import (
	"testing"

	"github.com/surveyforge/question-server/models"
)

type fakeQuestions struct {
	q *models.Questionnaire
}

func (f fakeQuestions) FindOne(id uint) (*models.Questionnaire, error) {
	if f.q != nil && f.q.ID == id {
		return f.q, nil
	}
	return nil, nil
}

type fakeAnswers struct {
	records []models.AnswerRecord
}

func (f fakeAnswers) Count(questionID uint) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.QuestionID == questionID {
			n++
		}
	}
	return n, nil
}

func (f fakeAnswers) FindAll(questionID uint, page ListPage) ([]models.AnswerRecord, error) {
	var matched []models.AnswerRecord
	for _, r := range f.records {
		if r.QuestionID == questionID {
			matched = append(matched, r)
		}
	}
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func genderQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		ID:    1,
		Title: "Profile survey",
		ComponentList: models.ComponentList{
			radioComponent("c1",
				models.OptionItem{Value: "male", Text: "Male"},
				models.OptionItem{Value: "female", Text: "Female"},
			),
			checkboxComponent("c2",
				models.CheckboxOption{Value: "basketball", Text: "Basketball"},
				models.CheckboxOption{Value: "football", Text: "Football"},
			),
			inputComponent("c3"),
		},
	}
}

func TestGetQuestionStatListAndCount_DecodesRows(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 101, QuestionID: 1, AnswerList: models.AnswerList{
				{ComponentFeID: "c1", Value: []string{"male"}},
				{ComponentFeID: "c2", Value: []string{"basketball", "football"}},
				{ComponentFeID: "c3", Value: []string{"hello"}},
			}},
		}},
	)

	list, total, err := svc.GetQuestionStatListAndCount(1, ListPage{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	row := list[0]
	if row["id"] != uint(101) {
		t.Errorf("row id = %v, want 101", row["id"])
	}
	if row["c1"] != "Male" {
		t.Errorf("c1 = %v, want Male", row["c1"])
	}
	if row["c2"] != "Basketball,Football" {
		t.Errorf("c2 = %v, want Basketball,Football", row["c2"])
	}
	if row["c3"] != "hello" {
		t.Errorf("c3 = %v, want hello", row["c3"])
	}
}

func TestGetQuestionStatListAndCount_EmptyInputs(t *testing.T) {
	answers := fakeAnswers{records: []models.AnswerRecord{
		{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{}},
	}}

	// Zero question id, unknown questionnaire and zero answers all degrade to
	// the same empty shape.
	cases := []struct {
		name       string
		questions  fakeQuestions
		answers    fakeAnswers
		questionID uint
	}{
		{"zero question id", fakeQuestions{q: genderQuestionnaire()}, answers, 0},
		{"missing questionnaire", fakeQuestions{}, answers, 99},
		{"no answers", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStatService(tc.questions, tc.answers)
			list, total, err := svc.GetQuestionStatListAndCount(tc.questionID, ListPage{Page: 1, PageSize: 10})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != 0 || len(list) != 0 {
				t.Errorf("got total=%d len=%d, want 0/0", total, len(list))
			}
			if list == nil {
				t.Error("list must be an empty slice, not nil")
			}
		})
	}
}

func TestGetQuestionStatListAndCount_PagePastEnd(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"male"}}}},
			{ID: 2, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"female"}}}},
		}},
	)

	list, total, err := svc.GetQuestionStatListAndCount(1, ListPage{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(list) != 0 {
		t.Errorf("len(list) = %d, want 0 for a page past the end", len(list))
	}
}

func TestGetQuestionStatListAndCount_OrphanedEntryOmitted(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 7, QuestionID: 1, AnswerList: models.AnswerList{
				{ComponentFeID: "c1", Value: []string{"male"}},
				{ComponentFeID: "gone", Value: []string{"x"}},
			}},
		}},
	)

	list, _, err := svc.GetQuestionStatListAndCount(1, ListPage{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := list[0]
	if _, ok := row["gone"]; ok {
		t.Error("entry referencing a removed component must be omitted from the row")
	}
	if row["c1"] != "Male" {
		t.Errorf("c1 = %v, want Male", row["c1"])
	}
}

func TestGetComponentStat_FirstSeenOrder(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"male"}}}},
			{ID: 2, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"male"}}}},
			{ID: 3, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"female"}}}},
		}},
	)

	stat, err := svc.GetComponentStat(1, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []StatItem{{Name: "Male", Count: 2}, {Name: "Female", Count: 1}}
	if len(stat) != len(want) {
		t.Fatalf("len(stat) = %d, want %d", len(stat), len(want))
	}
	for i := range want {
		if stat[i] != want[i] {
			t.Errorf("stat[%d] = %+v, want %+v", i, stat[i], want[i])
		}
	}
}

func TestGetComponentStat_CheckboxCountsEachCode(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c2", Value: []string{"basketball", "football"}}}},
			{ID: 2, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c2", Value: []string{"football"}}}},
		}},
	)

	stat, err := svc.GetComponentStat(1, "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []StatItem{{Name: "Basketball", Count: 1}, {Name: "Football", Count: 2}}
	if len(stat) != len(want) {
		t.Fatalf("len(stat) = %d, want %d", len(stat), len(want))
	}
	total := 0
	for i := range want {
		if stat[i] != want[i] {
			t.Errorf("stat[%d] = %+v, want %+v", i, stat[i], want[i])
		}
		total += stat[i].Count
	}
	// Counts sum to the number of (entry, code) pairs observed.
	if total != 3 {
		t.Errorf("summed counts = %d, want 3", total)
	}
}

func TestGetComponentStat_UnmatchedCodeKeepsEmptyName(t *testing.T) {
	svc := NewStatService(
		fakeQuestions{q: genderQuestionnaire()},
		fakeAnswers{records: []models.AnswerRecord{
			{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"stale-code"}}}},
		}},
	)

	stat, err := svc.GetComponentStat(1, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stat) != 1 || stat[0].Name != "" || stat[0].Count != 1 {
		t.Errorf("stat = %+v, want one bucket with empty name and count 1", stat)
	}
}

func TestGetComponentStat_SoftEmptyCases(t *testing.T) {
	records := []models.AnswerRecord{
		{ID: 1, QuestionID: 1, AnswerList: models.AnswerList{{ComponentFeID: "c1", Value: []string{"male"}}}},
	}

	cases := []struct {
		name       string
		questions  fakeQuestions
		answers    fakeAnswers
		questionID uint
		feID       string
	}{
		{"zero question id", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{records: records}, 0, "c1"},
		{"empty fe_id", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{records: records}, 1, ""},
		{"missing questionnaire", fakeQuestions{}, fakeAnswers{records: records}, 9, "c1"},
		{"missing component", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{records: records}, 1, "nope"},
		{"non-choice component", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{records: records}, 1, "c3"},
		{"no answers", fakeQuestions{q: genderQuestionnaire()}, fakeAnswers{}, 1, "c1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStatService(tc.questions, tc.answers)
			stat, err := svc.GetComponentStat(tc.questionID, tc.feID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(stat) != 0 {
				t.Errorf("stat = %+v, want empty", stat)
			}
			if stat == nil {
				t.Error("stat must be an empty slice, not nil")
			}
		})
	}
}
