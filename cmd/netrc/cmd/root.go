package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/netrc"
	"github.com/msto63/netrc/core/config"
	"github.com/msto63/netrc/core/log"
)

var (
	cfgFile   string
	netrcFile string
	verbose   bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "netrc",
	Short: "Werkzeuge für netrc-Credential-Dateien",
	Long: `netrc liest, prüft und formatiert netrc-Credential-Dateien.

Befehle:
  list     - Zeigt alle Einträge einer Datei
  get      - Zeigt die Zugangsdaten eines Hosts
  check    - Prüft die Syntax einer Datei
  fmt      - Gibt eine Datei kanonisch formatiert aus
  browse   - Startet die interaktive Oberfläche

Die Datei wird über --file, die Umgebungsvariable NETRC oder
~/.netrc gefunden.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: automatische Suche)")
	rootCmd.PersistentFlags().StringVarP(&netrcFile, "file", "f", "", "netrc-Datei (default: NETRC oder ~/.netrc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func initApp(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "NETRC",
		})
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	level := log.LevelInfo
	if parsed, perr := log.ParseLevel(cfg.GetString("log.level", "info")); perr == nil {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}

	format := log.FormatText
	if parsed, perr := log.ParseFormat(cfg.GetString("log.format", "text")); perr == nil {
		format = parsed
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "netrc",
	})
	log.SetDefault(logger)

	return nil
}

// resolveFile determines which netrc file to use: the --file flag wins,
// then the configuration, then the usual lookup via NETRC and the home
// directory.
func resolveFile() (string, error) {
	if netrcFile != "" {
		return netrcFile, nil
	}
	if path := cfg.GetString("netrc.file"); path != "" {
		return path, nil
	}
	if path, ok := netrc.Locate(); ok {
		return path, nil
	}
	return "", fmt.Errorf("keine netrc-Datei gefunden (weder --file noch NETRC noch ~/.netrc)")
}

// loadDocument resolves and parses the netrc file for a subcommand.
func loadDocument() (*netrc.Document, string, error) {
	path, err := resolveFile()
	if err != nil {
		return nil, "", err
	}

	logger.Debug("lade netrc-Datei", log.Fields{"path": path})

	doc, err := netrc.ParseFile(path)
	if err != nil {
		return nil, path, err
	}
	return doc, path, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
