package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

type focus int

const (
	focusTitle focus = iota
	focusIngredients
	focusSteps
	focusSubmit
	focusCount
)

const (
	defaultWidth = 72
	formHeight   = 20
	minListRows  = 4
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	title       textinput.Model
	ingredients textarea.Model
	steps       textarea.Model
	focus       focus

	list  viewport.Model
	width int

	loading bool
	// in-flight create requests; submissions are never blocked on this
	pending int
	lastErr error
}

func Run(deps Deps) error {
	if err := deps.validate(); err != nil {
		return err
	}
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.Focus()

	ing := newArea("Ingredients (comma-separated)")
	st := newArea("Steps (comma-separated)")

	m := model{
		theme:       DefaultTheme(),
		deps:        deps,
		log:         log,
		title:       ti,
		ingredients: ing,
		steps:       st,
		focus:       focusTitle,
		list:        viewport.New(defaultWidth, minListRows*4),
		loading:     true,
	}
	m.resize(defaultWidth+8, formHeight+minListRows*4)
	m.refreshList()
	return m
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.Blur()
	return ta
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdLoadRecipes(m.deps.Client))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshList()
		return m, nil

	case recipesLoadedMsg:
		m.loading = false
		if err := m.deps.Client.CompleteLoad(msg.recipes, msg.err); err != nil {
			m.lastErr = err
		}
		m.refreshList()
		return m, nil

	case recipeCreatedMsg:
		if m.pending > 0 {
			m.pending--
		}
		if err := m.deps.Client.CompleteSubmit(msg.recipe, msg.err); err != nil {
			m.lastErr = err
			return m, nil
		}
		m.syncInputs()
		m.refreshList()
		m.list.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if _, ok := m.deps.Notices.Current(); ok {
			return m.updateNotice(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus == focusSubmit {
				return m.submit()
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	return m.updateFocused(msg)
}

// updateNotice keeps the notice on screen until it is dismissed.
func (m model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", " ":
		m.deps.Notices.Dismiss()
	}
	return m, nil
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, ok := m.focus.field()
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	switch f {
	case domain.FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case domain.FieldIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case domain.FieldSteps:
		m.steps, cmd = m.steps.Update(msg)
	}
	m.deps.Client.UpdateDraftField(f, m.inputValue(f))
	return m, cmd
}

// field maps a focus slot to the draft field it edits. The submit button edits none.
func (f focus) field() (domain.Field, bool) {
	if f < 0 || int(f) >= len(domain.Fields) {
		return "", false
	}
	return domain.Fields[f], true
}

func (m model) inputValue(f domain.Field) string {
	switch f {
	case domain.FieldTitle:
		return m.title.Value()
	case domain.FieldIngredients:
		return m.ingredients.Value()
	case domain.FieldSteps:
		return m.steps.Value()
	}
	return ""
}

func (m *model) setInputValue(f domain.Field, v string) {
	switch f {
	case domain.FieldTitle:
		m.title.SetValue(v)
	case domain.FieldIngredients:
		m.ingredients.SetValue(v)
	case domain.FieldSteps:
		m.steps.SetValue(v)
	}
}

func (m model) submit() (tea.Model, tea.Cmd) {
	in, err := m.deps.Client.BeginSubmit()
	if err != nil {
		m.lastErr = err
		return m, nil
	}
	m.pending++
	return m, cmdSubmitRecipe(m.deps.Client, in)
}

func (m *model) setFocus(f focus) tea.Cmd {
	m.title.Blur()
	m.ingredients.Blur()
	m.steps.Blur()
	m.focus = f

	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusIngredients:
		return m.ingredients.Focus()
	case focusSteps:
		return m.steps.Focus()
	}
	return nil
}

// syncInputs copies the client's draft back into the inputs, e.g. after a reset.
func (m *model) syncInputs() {
	d := m.deps.Client.Draft()
	for _, f := range domain.Fields {
		m.setInputValue(f, d.Get(f))
	}
}

func (m *model) resize(w, h int) {
	inner := w - 8
	if inner < 20 {
		inner = 20
	}
	m.width = inner

	m.title.Width = inner
	m.ingredients.SetWidth(inner)
	m.steps.SetWidth(inner)

	rows := h - formHeight
	if rows < minListRows {
		rows = minListRows
	}
	m.list.Width = inner + 4
	m.list.Height = rows
}

func (m *model) refreshList() {
	recipes := m.deps.Client.Recipes()

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.theme.Help.Render("Loading recipes…"))
	case len(recipes) == 0:
		b.WriteString(m.theme.Help.Render("No recipes yet."))
	default:
		for i, r := range recipes {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderCard(m.theme, r, m.width))
		}
	}
	m.list.SetContent(b.String())
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Recipes") + "\n" +
		m.theme.Subtitle.Render(m.deps.APIURL) + "\n"

	if msg, ok := m.deps.Notices.Current(); ok {
		notice := m.theme.Notice.Render(
			m.theme.Title.Render(msg) + "\n\n" + m.theme.Help.Render("enter ok"),
		)
		return wrap.Render(header + "\n" + notice)
	}

	form := m.theme.Form.Render(
		m.theme.Title.Render("Add a Recipe") + "\n\n" +
			m.label("Title", focusTitle) + "\n" + m.title.View() + "\n\n" +
			m.label("Ingredients", focusIngredients) + "\n" + m.ingredients.View() + "\n\n" +
			m.label("Steps", focusSteps) + "\n" + m.steps.View() + "\n\n" +
			m.button(),
	)

	return wrap.Render(header + "\n" + form + "\n" + m.list.View() + "\n" + m.footer())
}

func (m model) label(s string, f focus) string {
	if m.focus == f {
		return m.theme.Focused.Render("▸ " + s)
	}
	return m.theme.Label.Render("  " + s)
}

func (m model) button() string {
	b := m.theme.Button.Render("Add Recipe")
	if m.focus == focusSubmit {
		b = m.theme.Focused.Render("▸ ") + b
	} else {
		b = "  " + b
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b)
}

func (m model) footer() string {
	parts := []string{"tab next • shift+tab prev • ctrl+s add • pgup/pgdn scroll • esc quit"}
	if m.pending > 0 {
		parts = append(parts, fmt.Sprintf("adding %d…", m.pending))
	}
	if m.deps.Debug && m.lastErr != nil {
		parts = append(parts, "last error: "+userMessage(m.lastErr))
	}
	return m.theme.Help.Render(strings.Join(parts, " • "))
}
