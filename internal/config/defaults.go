package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"format":           "text",
		"no_color":         false,
		"show_progress":    false,
		"fail_on_warnings": false,
		"include_prefix":   "c4framework",
		"inject_enabled":   true,
		"auto_include":     true,
	}
}
