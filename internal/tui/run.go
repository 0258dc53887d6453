package tui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogFile --debug açıkken bubbletea log dosyası.
const DebugLogFile = "videotrim-debug.log"

// Run arayüzü çalıştırır ve kapanınca son seçimi döner.
func Run(opts Options) (Result, error) {
	if opts.Debug {
		f, err := tea.LogToFile(filepath.Join(".", DebugLogFile), "videotrim")
		if err != nil {
			return Result{}, fmt.Errorf("debug log açılamadı: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := New(opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	model.zones.Close()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
