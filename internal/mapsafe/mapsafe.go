package mapsafe

// Get retrieves a typed value from a decoded JSON object.
// If the key is missing or the value cannot be converted, it returns the default value.
func Get[T any](m map[string]any, key string, defaultValue T) T {
	val, ok := m[key]
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case int:
		switch x := val.(type) {
		case int:
			return any(x).(T)
		case float64:
			return any(int(x)).(T)
		}
	case float64:
		switch x := val.(type) {
		case float64:
			return any(x).(T)
		case int:
			return any(float64(x)).(T)
		}
	case []string:
		items, ok := val.([]any)
		if !ok {
			break
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return defaultValue
			}
			out = append(out, s)
		}
		return any(out).(T)
	default:
		if v, ok := val.(T); ok {
			return v
		}
	}

	return defaultValue
}

// Object retrieves a nested object, or nil when the key is missing or not an object.
func Object(m map[string]any, key string) map[string]any {
	return Get[map[string]any](m, key, nil)
}
