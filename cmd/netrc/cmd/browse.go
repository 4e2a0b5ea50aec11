package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/netrc/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Startet die interaktive Oberfläche",
	Long: `Startet eine Terminal-Oberfläche zum Durchsuchen der netrc-Datei.

Navigation:
  ↑/↓       - Eintrag wählen
  /         - Einträge filtern
  p         - Passwort ein-/ausblenden
  q, Ctrl+C - Beenden`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	doc, path, err := loadDocument()
	if err != nil {
		printError("netrc-Datei konnte nicht gelesen werden", err)
		return err
	}

	p := tea.NewProgram(
		tui.NewModel(doc, path),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
