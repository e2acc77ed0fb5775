package contact

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/theme"
)

// Field identifies a focusable part of the form.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	FieldRobot
	FieldSend
	fieldCount
)

const messageHeight = 4

// SubmitMsg is emitted when a valid form is sent. The receiver stores the
// message and calls Form.Reset once it is saved.
type SubmitMsg struct {
	Form    *Form
	Message Message
}

// InvalidMsg is emitted when validation fails.
type InvalidMsg struct {
	Err error
}

// Options configures a Form.
type Options struct {
	Limit     int // message length in characters
	WarnBelow int // counter turns red below this many remaining
	Links     []content.Link
}

// Form is the Contact.bat content. It renders like any window content and
// additionally takes keys and clicks while its window is focused.
type Form struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	human   bool
	focus   Field
	focused bool

	limit     int
	warnBelow int
	links     []content.Link

	// row of each field in the last render, for clicks
	rows map[Field]int
}

// NewForm creates an empty form with the name field selected.
func NewForm(opts Options) *Form {
	if opts.Limit <= 0 {
		opts.Limit = 140
	}
	name := textinput.New()
	name.Prompt = "› "
	name.Placeholder = "Your name"
	name.CharLimit = 80

	email := textinput.New()
	email.Prompt = "› "
	email.Placeholder = "you@example.com"
	email.CharLimit = 120

	msg := textarea.New()
	msg.Placeholder = "Say hello..."
	msg.CharLimit = opts.Limit
	msg.ShowLineNumbers = false
	msg.SetHeight(messageHeight)

	return &Form{
		name:      name,
		email:     email,
		message:   msg,
		limit:     opts.Limit,
		warnBelow: opts.WarnBelow,
		links:     opts.Links,
		rows:      make(map[Field]int),
	}
}

// Focused reports which field has the cursor.
func (f *Form) Focused() Field {
	return f.focus
}

// Human reports whether the robot box is ticked.
func (f *Form) Human() bool {
	return f.human
}

// Remaining is the number of characters left in the message.
func (f *Form) Remaining() int {
	return f.limit - utf8.RuneCountInString(f.message.Value())
}

// Values returns the trimmed field contents.
func (f *Form) Values() Message {
	return Message{
		Name:  strings.TrimSpace(f.name.Value()),
		Email: strings.TrimSpace(f.email.Value()),
		Body:  strings.TrimSpace(f.message.Value()),
	}
}

// SetValues fills the text fields, used by tests and by restoring drafts.
func (f *Form) SetValues(name, email, body string) {
	f.name.SetValue(name)
	f.email.SetValue(email)
	f.message.SetValue(body)
}

// SetHuman ticks or clears the robot box.
func (f *Form) SetHuman(v bool) {
	f.human = v
}

// Reset clears every field and moves the cursor back to the name.
func (f *Form) Reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.human = false
	f.setFocus(FieldName)
}

// Focus is called when the form's window becomes active.
func (f *Form) Focus() tea.Cmd {
	f.focused = true
	return f.setFocus(f.focus)
}

// Blur is called when another window becomes active.
func (f *Form) Blur() {
	f.focused = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *Form) setFocus(field Field) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	if !f.focused {
		return nil
	}
	switch field {
	case FieldName:
		return f.name.Focus()
	case FieldEmail:
		return f.email.Focus()
	case FieldMessage:
		return f.message.Focus()
	}
	return nil
}

// Next moves the cursor forward, wrapping after the send button.
func (f *Form) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves the cursor back, wrapping before the name.
func (f *Form) Prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// Submit validates the form and returns the resulting message.
func (f *Form) Submit() tea.Cmd {
	m := f.Values()
	if err := Validate(m, f.limit, f.human); err != nil {
		return func() tea.Msg { return InvalidMsg{Err: err} }
	}
	return func() tea.Msg { return SubmitMsg{Form: f, Message: m} }
}

// Update handles a key press while the form's window is focused.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "tab":
			return f.Next()
		case "shift+tab":
			return f.Prev()
		case "enter":
			switch f.focus {
			case FieldName, FieldEmail:
				return f.Next()
			case FieldRobot:
				f.human = !f.human
				return nil
			case FieldSend:
				return f.Submit()
			}
		case "space":
			if f.focus == FieldRobot {
				f.human = !f.human
				return nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case FieldName:
		f.name, cmd = f.name.Update(msg)
	case FieldEmail:
		f.email, cmd = f.email.Update(msg)
	case FieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

// Click handles a click at (x, y) relative to the content's top left.
func (f *Form) Click(x, y int) tea.Cmd {
	for field := FieldName; field < fieldCount; field++ {
		row, ok := f.rows[field]
		if !ok {
			continue
		}
		height := 1
		if field == FieldMessage {
			height = messageHeight
		}
		if y < row || y >= row+height {
			continue
		}
		cmd := f.setFocus(field)
		switch field {
		case FieldRobot:
			f.human = !f.human
		case FieldSend:
			return f.Submit()
		}
		return cmd
	}
	return nil
}

// Render implements wm.Content.
func (f *Form) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(theme.Dim())
	active := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true)
	labelFor := func(field Field, s string) string {
		if f.focused && f.focus == field {
			return active.Render(s)
		}
		return label.Render(s)
	}

	f.name.SetWidth(max(width-3, 1))
	f.email.SetWidth(max(width-3, 1))
	f.message.SetWidth(max(width, 1))

	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}
	mark := func(field Field) {
		f.rows[field] = len(lines)
	}

	add(labelFor(FieldName, "Name"))
	mark(FieldName)
	add(f.name.View())
	add(labelFor(FieldEmail, "Email"))
	mark(FieldEmail)
	add(f.email.View())
	add(labelFor(FieldMessage, fmt.Sprintf("Message (max %d chars)", f.limit)))
	mark(FieldMessage)
	add(f.message.View())

	counter := label
	if f.Remaining() < f.warnBelow {
		counter = lipgloss.NewStyle().Foreground(theme.NotificationError())
	}
	add(counter.Render(fmt.Sprintf("%d characters left", f.Remaining())))
	add("")

	box := "[ ]"
	if f.human {
		box = "[x]"
	}
	mark(FieldRobot)
	add(labelFor(FieldRobot, box) + " I'm not a robot (probably)")
	add("")

	button := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.WindowFg()).Background(theme.Dim())
	if f.focused && f.focus == FieldSend {
		button = button.Background(theme.Accent()).Bold(true)
	}
	mark(FieldSend)
	add(button.Render("Send Message"))

	if len(f.links) > 0 {
		add("")
		add(label.Render("Find me elsewhere"))
		link := lipgloss.NewStyle().Foreground(theme.Accent()).Underline(true)
		for _, l := range f.links {
			add(lipgloss.Wrap(l.Label+": "+link.Render(l.URL), width, ""))
		}
	}
	return strings.Join(lines, "\n")
}
