package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/insurlytics/insurance-eda-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$                                     /$$$$$$$$ /$$$$$$$   /$$$$$$
        |_  $$_/                                    | $$_____/| $$__  $$ /$$__  $$
          | $$   /$$$$$$$   /$$$$$$$ /$$   /$$      | $$      | $$  \ $$| $$  \ $$
          | $$  | $$__  $$ /$$_____/| $$  | $$      | $$$$$   | $$  | $$| $$$$$$$$
          | $$  | $$  \ $$|  $$$$$$ | $$  | $$      | $$__/   | $$  | $$| $$__  $$
          | $$  | $$  | $$ \____  $$| $$  | $$      | $$      | $$  | $$| $$  | $$
         /$$$$$$| $$  | $$ /$$$$$$$/|  $$$$$$/      | $$$$$$$$| $$$$$$$/| $$  | $$
        |______/|__/  |__/|_______/  \______/       |________/|_______/ |__/  |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Insurance Loss Ratio EDA CLI (v%s)", formattedVersion)))
}
