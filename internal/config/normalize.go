package config

import "strings"

// Normalize trims string fields, lower-cases the ui mode, and defaults it to auto.
func Normalize(file *File) {
	file.Questions = strings.TrimSpace(file.Questions)
	file.Table = strings.TrimSpace(file.Table)
	file.TimeLimit = strings.TrimSpace(file.TimeLimit)
	file.UI = strings.ToLower(strings.TrimSpace(file.UI))
	if file.UI == "" {
		file.UI = UIAuto
	}
}
