package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

type formField int

const (
	fieldName formField = iota
	fieldPhone
	fieldCategory
	fieldCount
)

// addForm collects a new contact. Category is not typed; it cycles through
// the offered labels.
type addForm struct {
	name     textinput.Model
	phone    textinput.Model
	category contact.Category
	focus    formField
	err      string
}

func newAddForm() addForm {
	name := textinput.New()
	name.Placeholder = "Alice"
	name.CharLimit = 128
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "555-1234"
	phone.CharLimit = 64

	return addForm{
		name:     name,
		phone:    phone,
		category: contact.CategoryMobile,
	}
}

// contact validates the form and builds the contact to add. Name and phone
// are required here even though the store accepts empty fields.
func (f *addForm) contact() (*contact.Contact, bool) {
	name := strings.TrimSpace(f.name.Value())
	phone := strings.TrimSpace(f.phone.Value())

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		f.err = strings.Join(missing, " and ") + " required"
		return nil, false
	}

	f.err = ""
	return contact.New(name, phone, f.category), true
}

func (f *addForm) setFocus(field formField) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.phone.Blur()

	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldPhone:
		return f.phone.Focus()
	default:
		return nil
	}
}

func (f *addForm) cycleCategory(back bool) {
	if !back {
		f.category = f.category.Next()
		return
	}
	// Stepping back is stepping forward len-1 times.
	for range len(contact.Categories()) - 1 {
		f.category = f.category.Next()
	}
}

// update forwards key input to the focused text field or, on the category
// row, cycles the label.
func (f *addForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f.setFocus(f.focus - 1)
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldPhone:
		f.phone, cmd = f.phone.Update(msg)
	case fieldCategory:
		switch msg.String() {
		case "right", "l", " ":
			f.cycleCategory(false)
		case "left", "h":
			f.cycleCategory(true)
		}
	}
	return cmd
}

func (f addForm) view() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("New contact") + "\n\n")
	b.WriteString(f.label(fieldName, "Name") + f.name.View() + "\n")
	b.WriteString(f.label(fieldPhone, "Phone") + f.phone.View() + "\n")
	b.WriteString(f.label(fieldCategory, "Category") + "‹ " + f.category.String() + " ›\n")

	if f.err != "" {
		b.WriteString("\n" + ErrorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("tab next • ←/→ category • enter add • esc cancel"))

	return FormStyle.Render(b.String())
}

func (f addForm) label(field formField, text string) string {
	if f.focus == field {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}
