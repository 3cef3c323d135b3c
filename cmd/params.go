package cmd

// Param helpers coerce MCP tool arguments, which arrive as a generic JSON
// map, into typed values with defaults.

// StringParam returns the string value for key, or def.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam returns the integer value for key, or def. JSON numbers decode as
// float64, so both forms are accepted.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// BoolParam returns the boolean value for key, or def.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
