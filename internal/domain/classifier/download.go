package classifier

import (
	"path/filepath"
	"strings"
)

// DangerousExtensions are download types that can execute code on open.
var DangerousExtensions = []string{".exe", ".msi", ".bat", ".cmd", ".ps1", ".vbs", ".js", ".wsf", ".scr"}

// IsDangerousDownload returns the lower-cased extension of filename and whether
// it is on the dangerous list.
func IsDangerousDownload(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if ext == "" {
		return "", false
	}
	for _, d := range DangerousExtensions {
		if ext == d {
			return ext, true
		}
	}
	return ext, false
}
