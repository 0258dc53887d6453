package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// InstallInfo FFmpeg kurulum komutu
type InstallInfo struct {
	Manager     string
	Command     string
	Args        []string
	Description string
	ManualURL   string
	Supported   bool
}

const ffmpegManualURL = "https://ffmpeg.org/download.html"

// LookPathFunc testlerde exec.LookPath yerine kullanılır.
type LookPathFunc func(file string) (string, error)

// managers işletim sistemine göre denenecek paket yöneticileri, öncelik sırasıyla.
var managers = map[string][]string{
	"darwin":  {"brew"},
	"linux":   {"apt", "dnf", "yum", "pacman"},
	"windows": {"choco", "winget"},
}

// ffmpeg paketinin her yöneticideki kurulum argümanları. ffprobe aynı
// paketle gelir.
var ffmpegPackages = map[string]struct {
	sudo bool
	args []string
}{
	"brew":   {false, []string{"install", "ffmpeg"}},
	"apt":    {true, []string{"install", "-y", "ffmpeg"}},
	"dnf":    {true, []string{"install", "-y", "ffmpeg"}},
	"yum":    {true, []string{"install", "-y", "ffmpeg"}},
	"pacman": {true, []string{"-S", "--noconfirm", "ffmpeg"}},
	"choco":  {false, []string{"install", "ffmpeg", "-y"}},
	"winget": {false, []string{"install", "Gyan.FFmpeg"}},
}

// DetectPackageManager mevcut paket yöneticisini tespit eder
func DetectPackageManager(goos string, lookPath LookPathFunc) string {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, pm := range managers[goos] {
		if _, err := lookPath(pm); err == nil {
			return pm
		}
	}
	return ""
}

// FFmpegInstall paket yöneticisi için kurulum bilgisini döner
func FFmpegInstall(pm string) InstallInfo {
	info := InstallInfo{Manager: pm, ManualURL: ffmpegManualURL}
	pkg, ok := ffmpegPackages[pm]
	if !ok {
		return info
	}

	info.Supported = true
	if pkg.sudo {
		info.Command = "sudo"
		info.Args = append([]string{pm}, pkg.args...)
	} else {
		info.Command = pm
		info.Args = append([]string(nil), pkg.args...)
	}
	info.Description = info.Command + " " + strings.Join(info.Args, " ")
	return info
}

// CurrentFFmpegInstall bu makine için kurulum bilgisini döner
func CurrentFFmpegInstall() InstallInfo {
	return FFmpegInstall(DetectPackageManager(runtime.GOOS, nil))
}

// Install kurulum komutunu terminale bağlı olarak çalıştırır
func Install(ctx context.Context, info InstallInfo) error {
	if !info.Supported {
		return fmt.Errorf(
			"FFmpeg otomatik olarak kurulamıyor.\nManuel kurulum: %s",
			info.ManualURL,
		)
	}

	cmd := exec.CommandContext(ctx, info.Command, info.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg kurulumu başarısız: %w", err)
	}
	return nil
}
