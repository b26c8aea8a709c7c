package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DatestampLayout is the layout for datestamped output names,
// matching the legacy loader's file naming.
const DatestampLayout = "20060102"

// OutputPaths derives the OK and reject output paths for an input
// document: <base>_ok.json and <base>_reject.json next to the input.
// When stamp is non-zero, a UTC datestamp is inserted before the
// suffix: <base>_<yyyymmdd>_ok.json.
func OutputPaths(inputPath string, stamp time.Time) (okPath, rejectPath string) {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".json"
	}

	if !stamp.IsZero() {
		base = base + "_" + stamp.UTC().Format(DatestampLayout)
	}

	return base + "_ok" + ext, base + "_reject" + ext
}
