// Package pathfind: default numeric coercion for edge payloads.

package pathfind

// numericCost interprets an edge payload as its numeric cost, used
// when no Cost callback is supplied. Payloads of any built-in numeric
// type are accepted; everything else reports false.
func numericCost(payload any) (float64, bool) {
	switch v := payload.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
