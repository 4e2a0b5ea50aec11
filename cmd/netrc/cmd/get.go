package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/netrc/utils/stringx"
)

var (
	passwordOnly bool
	loginOnly    bool
)

var getCmd = &cobra.Command{
	Use:   "get <host>",
	Short: "Zeigt die Zugangsdaten eines Hosts",
	Long: `Sucht die Zugangsdaten eines Hosts in der netrc-Datei.

Existiert kein Eintrag für den Host, wird der default-Eintrag
verwendet. Mit --password oder --login wird nur der jeweilige Wert
ausgegeben, was die Verwendung in Skripten erleichtert.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&passwordOnly, "password", false, "Nur das Passwort ausgeben")
	getCmd.Flags().BoolVar(&loginOnly, "login", false, "Nur den Login ausgeben")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	host := args[0]

	doc, _, err := loadDocument()
	if err != nil {
		printError("netrc-Datei konnte nicht gelesen werden", err)
		return err
	}

	cred, ok := doc.Lookup(host)
	if !ok {
		err := fmt.Errorf("kein Eintrag für %q und kein default-Eintrag vorhanden", host)
		printError("Host nicht gefunden", err)
		return err
	}

	switch {
	case passwordOnly:
		fmt.Println(cred.Password)
	case loginOnly:
		fmt.Println(cred.Login)
	default:
		fmt.Printf("Host:     %s\n", host)
		fmt.Printf("Login:    %s\n", cred.Login)
		if cred.Account != "" {
			fmt.Printf("Account:  %s\n", cred.Account)
		}
		fmt.Printf("Passwort: %s\n", stringx.Mask(cred.Password, 2))
	}

	return nil
}
