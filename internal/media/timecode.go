package media

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimecode "90", "1:30", "00:01:30.5" veya "5,5" biçimindeki değerleri
// süreye çevirir.
func ParseTimecode(raw string) (time.Duration, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return 0, fmt.Errorf("boş değer")
	}

	seconds, err := parseSeconds(normalized)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func parseSeconds(value string) (float64, error) {
	if !strings.Contains(value, ":") {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("geçersiz sayı")
		}
		return v, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("zaman formatı hatalı")
	}
	parsed := make([]float64, len(parts))
	for i, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			return 0, fmt.Errorf("zaman formatı hatalı")
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("zaman formatı hatalı")
		}
		parsed[i] = v
	}

	if len(parsed) == 2 {
		if parsed[1] >= 60 {
			return 0, fmt.Errorf("saniye 60'tan küçük olmalı")
		}
		return parsed[0]*60 + parsed[1], nil
	}
	if parsed[1] >= 60 || parsed[2] >= 60 {
		return 0, fmt.Errorf("dakika/saniye 60'tan küçük olmalı")
	}
	return parsed[0]*3600 + parsed[1]*60 + parsed[2], nil
}

// FormatTimecode süreyi hh:mm:ss[.mmm] biçiminde yazar.
func FormatTimecode(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	millis := int64((d + time.Millisecond/2) / time.Millisecond)
	hours := millis / 3600000
	minutes := (millis % 3600000) / 60000
	seconds := (millis % 60000) / 1000
	ms := millis % 1000

	if ms == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, ms)
}

// FormatSeconds ffmpeg argümanları için saniye değeri üretir.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
