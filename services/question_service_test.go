package services

import (
	"bytes"
	"testing"

	"github.com/surveyforge/question-server/models"
)

func TestCloneComponents_RegeneratesFeIDs(t *testing.T) {
	src := models.ComponentList{
		radioComponent("c1", models.OptionItem{Value: "male", Text: "Male"}),
		checkboxComponent("c2", models.CheckboxOption{Value: "a", Text: "A"}),
		inputComponent("c3"),
	}
	src[1].IsHidden = true
	src[2].IsLocked = true

	out := CloneComponents(src)
	if len(out) != len(src) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(src))
	}

	seen := map[string]bool{}
	for i := range out {
		if out[i].FeID == src[i].FeID {
			t.Errorf("component %d kept its fe_id %q", i, src[i].FeID)
		}
		if out[i].FeID == "" {
			t.Errorf("component %d has empty fe_id", i)
		}
		if seen[out[i].FeID] {
			t.Errorf("fe_id %q assigned twice", out[i].FeID)
		}
		seen[out[i].FeID] = true

		// Everything but the fe_id is preserved, in order.
		if out[i].Type != src[i].Type || out[i].Title != src[i].Title ||
			out[i].IsHidden != src[i].IsHidden || out[i].IsLocked != src[i].IsLocked {
			t.Errorf("component %d lost descriptor fields: %+v vs %+v", i, out[i], src[i])
		}
		if !bytes.Equal(out[i].Props, src[i].Props) {
			t.Errorf("component %d props changed", i)
		}
	}
}

func TestCloneComponents_Empty(t *testing.T) {
	out := CloneComponents(nil)
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestDefaultInfoComponent(t *testing.T) {
	comp := defaultInfoComponent()
	if comp.Type != models.TypeInfo {
		t.Errorf("type = %q, want %q", comp.Type, models.TypeInfo)
	}
	if comp.FeID == "" {
		t.Error("fe_id must be assigned at creation")
	}
	props, ok := comp.DecodeProps().(models.InfoProps)
	if !ok {
		t.Fatalf("props decoded to %T, want InfoProps", comp.DecodeProps())
	}
	if props.Title == "" {
		t.Error("seeded info component must carry a title")
	}
}
