package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/netrc"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Prüft die Syntax einer netrc-Datei",
	Long: `Prüft, ob sich eine netrc-Datei fehlerfrei parsen lässt.

Bei Syntaxfehlern wird die betroffene Zeile ausgegeben und der
Exit-Code ist ungleich null.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveFile()
	if err != nil {
		printError("netrc-Datei konnte nicht bestimmt werden", err)
		return err
	}

	doc, err := netrc.ParseFile(path)
	if err != nil {
		var parseErr *netrc.ParseError
		if errors.As(err, &parseErr) {
			fmt.Printf("%s: Syntaxfehler in Zeile %d: %s\n", path, parseErr.Lineno, parseErr.Message)
		} else {
			printError("Datei konnte nicht gelesen werden", err)
		}
		return err
	}

	fmt.Printf("%s: OK (%d Einträge, %d Makros)\n", path, len(doc.Hosts), len(doc.Macros))
	return nil
}
