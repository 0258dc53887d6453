package media

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ExternalTool harici bir aracın durumunu temsil eder
type ExternalTool struct {
	Name      string
	Available bool
	Path      string
	Version   string
}

// findTool önce çevre değişkenine, sonra PATH'e, sonra bilinen yollara bakar
func findTool(name, envKey string) (string, error) {
	if envPath := strings.TrimSpace(os.Getenv(envKey)); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"/opt/homebrew/bin/" + name, "/usr/local/bin/" + name}
	case "linux":
		candidates = []string{"/usr/bin/" + name, "/usr/local/bin/" + name, "/snap/bin/" + name}
	case "windows":
		candidates = []string{`C:\ffmpeg\bin\` + name + ".exe"}
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%s bulunamadı. Lütfen yükleyin:\n"+
		"  macOS:   brew install ffmpeg\n"+
		"  Linux:   sudo apt install ffmpeg\n"+
		"  Veya %s çevre değişkenini ayarlayın", name, envKey)
}

// FindFFmpeg sistemde ffmpeg yolunu bulur
func FindFFmpeg() (string, error) {
	return findTool("ffmpeg", "VIDEOTRIM_FFMPEG")
}

// FindFFprobe sistemde ffprobe yolunu bulur
func FindFFprobe() (string, error) {
	return findTool("ffprobe", "VIDEOTRIM_FFPROBE")
}

// CheckDependencies ffmpeg ve ffprobe durumunu döner
func CheckDependencies() []ExternalTool {
	tools := []ExternalTool{}
	for _, item := range []struct {
		name string
		find func() (string, error)
	}{
		{"FFmpeg", FindFFmpeg},
		{"FFprobe", FindFFprobe},
	} {
		tool := ExternalTool{Name: item.name}
		if path, err := item.find(); err == nil {
			tool.Available = true
			tool.Path = path
			if out, err := exec.Command(path, "-version").Output(); err == nil {
				lines := strings.Split(string(out), "\n")
				if len(lines) > 0 {
					tool.Version = strings.TrimSpace(lines[0])
				}
			}
		}
		tools = append(tools, tool)
	}
	return tools
}
