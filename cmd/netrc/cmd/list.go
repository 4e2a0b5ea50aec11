package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/netrc/utils/stringx"
)

var showSecrets bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Zeigt alle Einträge einer netrc-Datei",
	Long: `Zeigt alle Maschinen-Einträge und Makros einer netrc-Datei an.

Passwörter werden maskiert ausgegeben. Mit --show-secrets werden sie
im Klartext angezeigt.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Passwörter im Klartext anzeigen")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	doc, path, err := loadDocument()
	if err != nil {
		printError("netrc-Datei konnte nicht gelesen werden", err)
		return err
	}

	fmt.Printf("Datei: %s\n\n", path)

	hosts := doc.HostNames()
	if len(hosts) == 0 {
		fmt.Println("Keine Einträge vorhanden.")
	} else {
		fmt.Printf("%-30s %-20s %-15s %s\n", "MASCHINE", "LOGIN", "ACCOUNT", "PASSWORT")
		for _, host := range hosts {
			cred := doc.Hosts[host]
			password := cred.Password
			if !showSecrets {
				password = stringx.Mask(password, 2)
			}
			fmt.Printf("%-30s %-20s %-15s %s\n",
				stringx.Truncate(host, 30, "..."),
				stringx.Truncate(cred.Login, 20, "..."),
				stringx.DefaultIfBlank(cred.Account, "-"),
				password)
		}
	}

	if macros := doc.MacroNames(); len(macros) > 0 {
		fmt.Println()
		fmt.Println("Makros:")
		for _, name := range macros {
			fmt.Printf("  %s (%d Zeilen)\n", name, len(doc.Macros[name]))
		}
	}

	return nil
}
