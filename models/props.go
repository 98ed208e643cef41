package models

import "encoding/json"

// Component type tags. The set is closed per deployment; anything else
// decodes to UnknownProps.
const (
	TypeInfo      = "question-info"
	TypeTitle     = "question-title"
	TypeParagraph = "question-paragraph"
	TypeInput     = "question-input"
	TypeTextarea  = "question-textarea"
	TypeRadio     = "question-radio"
	TypeCheckbox  = "question-checkbox"
)

// ComponentProps is the decoded form of a component's props bag, one variant
// per known component type.
type ComponentProps interface {
	isComponentProps()
}

// OptionItem is one {value, text} pair of a single-choice component.
type OptionItem struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// CheckboxOption additionally carries the editor's default-checked flag.
type CheckboxOption struct {
	Value   string `json:"value"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type InfoProps struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type TitleProps struct {
	Text     string `json:"text"`
	Level    int    `json:"level"`
	IsCenter bool   `json:"isCenter"`
}

type ParagraphProps struct {
	Text     string `json:"text"`
	IsCenter bool   `json:"isCenter"`
}

type InputProps struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
}

type TextareaProps struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
}

type RadioProps struct {
	Title      string       `json:"title"`
	Options    []OptionItem `json:"options"`
	Value      string       `json:"value"`
	IsVertical bool         `json:"isVertical"`
}

type CheckboxProps struct {
	Title      string           `json:"title"`
	List       []CheckboxOption `json:"list"`
	IsVertical bool             `json:"isVertical"`
}

// UnknownProps keeps the raw bag for type tags outside the closed set, so a
// schema addition degrades to verbatim values instead of misdecoding.
type UnknownProps struct {
	Raw json.RawMessage
}

func (InfoProps) isComponentProps()      {}
func (TitleProps) isComponentProps()     {}
func (ParagraphProps) isComponentProps() {}
func (InputProps) isComponentProps()     {}
func (TextareaProps) isComponentProps()  {}
func (RadioProps) isComponentProps()     {}
func (CheckboxProps) isComponentProps()  {}
func (UnknownProps) isComponentProps()   {}

// ParseProps decodes a props bag by type tag. Malformed JSON yields the zero
// variant: answer decoding must never fail on a single bad descriptor.
func ParseProps(typ string, raw json.RawMessage) ComponentProps {
	switch typ {
	case TypeInfo:
		var p InfoProps
		unmarshalProps(raw, &p)
		return p
	case TypeTitle:
		var p TitleProps
		unmarshalProps(raw, &p)
		return p
	case TypeParagraph:
		var p ParagraphProps
		unmarshalProps(raw, &p)
		return p
	case TypeInput:
		var p InputProps
		unmarshalProps(raw, &p)
		return p
	case TypeTextarea:
		var p TextareaProps
		unmarshalProps(raw, &p)
		return p
	case TypeRadio:
		var p RadioProps
		unmarshalProps(raw, &p)
		return p
	case TypeCheckbox:
		var p CheckboxProps
		unmarshalProps(raw, &p)
		return p
	default:
		return UnknownProps{Raw: raw}
	}
}

func unmarshalProps(raw json.RawMessage, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}
