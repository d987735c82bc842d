package config

// GetDefaults returns the built-in default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"indent": 2,
		"backup": true,
		"prefix": "gh-",
		"dir":    ".",
	}
}
