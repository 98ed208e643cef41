package services

import (
	"strings"

	"github.com/surveyforge/question-server/models"
)

// ResolveText turns the raw codes of one answer entry into display text for
// the given component. Choice components look each code up in their option
// pairs; a code with no match contributes an empty string at its position.
// Every other type echoes the raw codes. Results are comma-joined in stored
// order, so a multi-valued radio entry still decodes without loss.
func ResolveText(comp *models.Component, codes []string) string {
	switch p := comp.DecodeProps().(type) {
	case models.RadioProps:
		texts := make([]string, len(codes))
		for i, code := range codes {
			texts[i] = lookupOption(p.Options, code)
		}
		return strings.Join(texts, ",")
	case models.CheckboxProps:
		texts := make([]string, len(codes))
		for i, code := range codes {
			texts[i] = lookupCheckbox(p.List, code)
		}
		return strings.Join(texts, ",")
	default:
		return strings.Join(codes, ",")
	}
}

// Linear scan, first match wins: duplicate option values resolve to the
// earliest pair in editor order.
func lookupOption(opts []models.OptionItem, code string) string {
	for _, o := range opts {
		if o.Value == code {
			return o.Text
		}
	}
	return ""
}

func lookupCheckbox(list []models.CheckboxOption, code string) string {
	for _, o := range list {
		if o.Value == code {
			return o.Text
		}
	}
	return ""
}
