package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/mlihgenel/videotrim-cli/internal/installer"
	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
)

var doctorInstall bool

// checkTools testlerde değiştirilebilir.
var checkTools = media.CheckDependencies

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "FFmpeg/FFprobe kurulumunu kontrol et",
	Long: `Kırpma ve önizleme için gereken FFmpeg ve FFprobe araçlarını kontrol eder.
Eksikse paket yöneticisine göre kurulum komutunu gösterir.

Örnekler:
  videotrim doctor
  videotrim doctor --install`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := checkTools()
		missing := missingTools(tools)
		info := installer.CurrentFFmpegInstall()

		if isJSONOutput() {
			return printJSON(newDoctorPayload(tools, info))
		}

		rows := make([][]string, 0, len(tools))
		for _, tool := range tools {
			status := "✅"
			if !tool.Available {
				status = "❌"
			}
			rows = append(rows, []string{tool.Name, status, tool.Path, tool.Version})
		}
		ui.PrintTable([]string{"Araç", "Durum", "Yol", "Sürüm"}, rows)
		_ = config.MarkFirstRunDone()

		if len(missing) == 0 {
			ui.PrintSuccess("Tüm araçlar hazır")
			return nil
		}

		if !doctorInstall {
			if info.Supported {
				ui.PrintInfo(fmt.Sprintf("Kurmak için: %s  (veya videotrim doctor --install)", info.Description))
			} else {
				ui.PrintInfo(fmt.Sprintf("Manuel kurulum: %s", info.ManualURL))
			}
			return fmt.Errorf("eksik araçlar: %v", missing)
		}

		ui.PrintInfo(fmt.Sprintf("Kuruluyor: %s", info.Description))
		if err := installer.Install(context.Background(), info); err != nil {
			ui.PrintError(err.Error())
			return err
		}
		ui.PrintSuccess("FFmpeg kuruldu")
		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorInstall, "install", false, "Eksik araçları paket yöneticisiyle kur")
	rootCmd.AddCommand(doctorCmd)
}

func missingTools(tools []media.ExternalTool) []string {
	var missing []string
	for _, tool := range tools {
		if !tool.Available {
			missing = append(missing, tool.Name)
		}
	}
	return missing
}

// warnFirstRun ilk açılışta eksik araçları bir kez bildirir.
func warnFirstRun() {
	if !config.IsFirstRun() {
		return
	}
	defer config.MarkFirstRunDone()
	if missing := missingTools(checkTools()); len(missing) > 0 {
		ui.PrintWarning(fmt.Sprintf("Eksik araçlar: %v. Kontrol için: videotrim doctor", missing))
	}
}
