package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultstack/internal/adapters/tui/styles"
	"vaultstack/internal/config"
)

// Form field indices
const (
	fieldURL = iota
	fieldTokenID
	fieldTokenSecret
	fieldVaultPath
	fieldBookName
	fieldShelfName
)

type setupState int

const (
	stateEditing setupState = iota
	stateDone
	stateCancelled
)

// SetupModel is the interactive configuration editor. It seeds the form
// from an existing config when one is present and writes the result to
// the config path on submit.
type SetupModel struct {
	form       *Form
	configPath string
	state      setupState
	errMsg     string
	copied     bool
}

// NewSetup creates the setup model, pre-filling fields from cfg.
func NewSetup(configPath string, cfg config.Config) *SetupModel {
	form := NewForm(
		NewField("BookStack URL", "https://bookstack.example.com", false),
		NewField("API token ID", "", false),
		NewField("API token secret", "", true),
		NewField("Obsidian vault path", "~/vault", false),
		NewField("Book name", config.DefaultBookName, false),
		NewField("Shelf name", config.DefaultShelfName, false),
	)
	form.SetValue(fieldURL, cfg.BookStack.URL)
	form.SetValue(fieldTokenID, cfg.BookStack.TokenID)
	form.SetValue(fieldTokenSecret, cfg.BookStack.TokenSecret)
	form.SetValue(fieldVaultPath, cfg.Obsidian.VaultPath)
	form.SetValue(fieldBookName, cfg.Transfer.BookName)
	form.SetValue(fieldShelfName, cfg.Transfer.ShelfName)

	return &SetupModel{
		form:       form,
		configPath: configPath,
	}
}

// Cancelled reports whether the user left without saving.
func (m *SetupModel) Cancelled() bool {
	return m.state == stateCancelled
}

// Init implements tea.Model
func (m *SetupModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateDone {
			switch msg.String() {
			case "c":
				if clipboard.WriteAll(m.configPath) == nil {
					m.copied = true
				}
				return m, nil
			case "q", "esc", "enter", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			m.state = stateCancelled
			return m, tea.Quit
		case msg.String() == "ctrl+c":
			m.state = stateCancelled
			return m, tea.Quit
		case key.Matches(msg, m.form.Keys.Submit):
			return m.submit()
		}
	}

	handled, cmd := m.form.Update(msg)
	if handled {
		return m, nil
	}
	return m, cmd
}

func (m *SetupModel) submit() (tea.Model, tea.Cmd) {
	cfg := config.Default()
	cfg.BookStack.URL = strings.TrimRight(m.form.Value(fieldURL), "/")
	cfg.BookStack.TokenID = m.form.Value(fieldTokenID)
	cfg.BookStack.TokenSecret = m.form.Value(fieldTokenSecret)
	cfg.Obsidian.VaultPath = m.form.Value(fieldVaultPath)
	if v := m.form.Value(fieldBookName); v != "" {
		cfg.Transfer.BookName = v
	}
	if v := m.form.Value(fieldShelfName); v != "" {
		cfg.Transfer.ShelfName = v
	}

	if err := cfg.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if err := config.Save(m.configPath, cfg); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.state = stateDone
	return m, nil
}

// View implements tea.Model
func (m *SetupModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("vaultstack setup"))
	b.WriteString("\n")

	switch m.state {
	case stateDone:
		b.WriteString(styles.Success.Render("✓ Configuration saved"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(m.configPath))
		b.WriteString("\n\n")
		if m.copied {
			b.WriteString(styles.MutedText.Render("path copied to clipboard"))
			b.WriteString("\n\n")
		}
		b.WriteString(styles.HelpKey.Render("c") + " " + styles.HelpDesc.Render("copy path"))
		b.WriteString("  ")
		b.WriteString(styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"))

	case stateCancelled:
		b.WriteString(styles.MutedText.Render("setup cancelled"))

	default:
		b.WriteString(styles.Subtitle.Render("Connection and vault settings"))
		b.WriteString("\n\n")
		for i := range m.form.Fields {
			b.WriteString(m.form.RenderField(i))
			b.WriteString("\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(styles.ErrorMsg.Render("✗ " + m.errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.form.RenderHelp())
	}

	b.WriteString("\n")
	return styles.App.Render(b.String())
}

// RunSetup starts the setup program and blocks until it exits.
func RunSetup(configPath string, cfg config.Config) error {
	model := NewSetup(configPath, cfg)
	program := tea.NewProgram(model)
	_, err := program.Run()
	return err
}
