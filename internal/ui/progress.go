package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const progressWidth = 40

var (
	barFillStyle  = successStyle
	barTrackStyle = dimStyle
)

// ProgressBar kare çıkarma ilerlemesini tek satırda günceller.
type ProgressBar struct {
	Total   int
	Current int
	Label   string

	out io.Writer
}

func NewProgressBar(total int, label string) *ProgressBar {
	return &ProgressBar{Total: total, Label: label, out: os.Stdout}
}

// Update toplam sıfırsa yok sayılır; son karede satır kapanır.
func (pb *ProgressBar) Update(current int) {
	if pb.Total <= 0 {
		return
	}
	if current > pb.Total {
		current = pb.Total
	}
	pb.Current = current
	fmt.Fprintf(pb.out, "\r  %s %s %3.0f%% (%d/%d)",
		labelStyle.Render(pb.Label), renderBar(current, pb.Total, progressWidth),
		float64(current)/float64(pb.Total)*100, current, pb.Total)
	if current == pb.Total {
		fmt.Fprintln(pb.out)
	}
}

func renderBar(current, total, width int) string {
	filled := width * current / total
	return "[" + barFillStyle.Render(strings.Repeat("█", filled)) +
		barTrackStyle.Render(strings.Repeat("░", width-filled)) + "]"
}
