package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/netrc/document"
	"github.com/msto63/netrc/utils/stringx"
)

// entryItem is a single machine entry in the list view
type entryItem struct {
	host string
	cred document.Credential
}

func (i entryItem) Title() string { return i.host }

func (i entryItem) Description() string {
	if i.cred.Account != "" {
		return fmt.Sprintf("Login: %s, Account: %s", i.cred.Login, i.cred.Account)
	}
	return "Login: " + i.cred.Login
}

func (i entryItem) FilterValue() string { return i.host + " " + i.cred.Login }

// Model is the main TUI model for browsing a netrc document
type Model struct {
	list       list.Model
	doc        *document.Document
	path       string
	width      int
	height     int
	ready      bool
	showSecret bool
}

// NewModel creates a new TUI model for the given document
func NewModel(doc *document.Document, path string) Model {
	hosts := doc.HostNames()
	items := make([]list.Item, 0, len(hosts))
	for _, host := range hosts {
		items = append(items, entryItem{host: host, cred: doc.Hosts[host]})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorPrimary).
		BorderLeftForeground(colorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorMuted).
		BorderLeftForeground(colorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "netrc: " + path
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		list: l,
		doc:  doc,
		path: path,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keine Shortcuts, solange der Filter aktiv ist.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "p":
			m.showSecret = !m.showSecret
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Rechte Hälfte bleibt für die Detailansicht frei.
		m.list.SetSize(msg.Width/2, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list and the detail pane side by side
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	detail := m.renderDetail()

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		detail,
	)
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return DetailBoxStyle.Render(SubtitleStyle.Render("Keine Einträge vorhanden"))
	}

	password := stringx.Mask(item.cred.Password, 2)
	passwordStyle := SecretStyle
	if m.showSecret {
		password = item.cred.Password
		passwordStyle = DetailValueStyle
	}

	var b strings.Builder
	b.WriteString(DetailLabelStyle.Render("Maschine"))
	b.WriteByte('\n')
	b.WriteString(DetailValueStyle.Render(item.host))
	b.WriteString("\n\n")
	b.WriteString(DetailLabelStyle.Render("Login"))
	b.WriteByte('\n')
	b.WriteString(DetailValueStyle.Render(item.cred.Login))
	b.WriteString("\n\n")

	if item.cred.Account != "" {
		b.WriteString(DetailLabelStyle.Render("Account"))
		b.WriteByte('\n')
		b.WriteString(DetailValueStyle.Render(item.cred.Account))
		b.WriteString("\n\n")
	}

	b.WriteString(DetailLabelStyle.Render("Passwort"))
	b.WriteByte('\n')
	b.WriteString(passwordStyle.Render(password))

	if macros := m.doc.MacroNames(); len(macros) > 0 {
		b.WriteString("\n\n")
		b.WriteString(DetailLabelStyle.Render("Makros"))
		b.WriteByte('\n')
		b.WriteString(SubtitleStyle.Render(strings.Join(macros, ", ")))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelp("p: Passwort anzeigen  /: Filtern  q: Beenden"))

	width := m.width - m.width/2 - 4
	if width < 20 {
		width = 20
	}

	return DetailBoxStyle.Width(width).Render(b.String())
}
