package tui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bunchhieng/lv/internal/model"
)

const (
	fieldTitle = iota
	fieldURL
	fieldDescription
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title*", "URL*", "Description", "Tags (comma separated)"}

// linkForm is the state of the add/edit form. editingID is empty when adding.
type linkForm struct {
	editingID  string
	values     [fieldCount]string
	focus      int
	validation model.Validation
}

func newForm() linkForm {
	return linkForm{}
}

func editForm(link model.Link) linkForm {
	d := model.DraftFrom(link)
	return linkForm{
		editingID: link.ID,
		values:    [fieldCount]string{d.Title, d.URL, d.Description, d.Tags},
	}
}

func (f *linkForm) editing() bool {
	return f.editingID != ""
}

func (f *linkForm) draft() model.Draft {
	return model.Draft{
		Title:       f.values[fieldTitle],
		URL:         f.values[fieldURL],
		Description: f.values[fieldDescription],
		Tags:        f.values[fieldTags],
	}
}

// fieldError returns the validation message shown under field i.
func (f *linkForm) fieldError(i int) string {
	switch i {
	case fieldTitle:
		return f.validation.Error(model.FieldTitle)
	case fieldURL:
		return f.validation.Error(model.FieldURL)
	}
	return ""
}

func (f *linkForm) next() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *linkForm) prev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

// edit applies a text-editing key to the focused field. Other keys are ignored.
func (f *linkForm) edit(msg tea.KeyMsg) {
	v := &f.values[f.focus]
	switch msg.Type {
	case tea.KeyBackspace:
		if *v != "" {
			_, size := utf8.DecodeLastRuneInString(*v)
			*v = (*v)[:len(*v)-size]
		}
	case tea.KeySpace:
		*v += " "
	case tea.KeyRunes:
		*v += string(msg.Runes)
	}
}
