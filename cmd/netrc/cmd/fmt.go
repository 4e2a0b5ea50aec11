package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Gibt eine netrc-Datei kanonisch formatiert aus",
	Long: `Parst eine netrc-Datei und gibt sie in kanonischer Form wieder aus.

Einträge werden alphabetisch sortiert, jeweils ein Attribut pro Zeile.
Mit --write wird die Datei direkt überschrieben, sonst geht die
Ausgabe nach stdout.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Datei direkt überschreiben")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	doc, path, err := loadDocument()
	if err != nil {
		printError("netrc-Datei konnte nicht gelesen werden", err)
		return err
	}

	formatted := doc.String()

	if fmtWrite {
		// Dateirechte bleiben bei 0600, wie für netrc-Dateien üblich.
		if err := os.WriteFile(path, []byte(formatted), 0o600); err != nil {
			printError("Datei konnte nicht geschrieben werden", err)
			return err
		}
		fmt.Printf("%s formatiert\n", path)
		return nil
	}

	fmt.Print(formatted)
	return nil
}
