package domain

// FreezeMode controls how often version hashes are recomputed.
//
// Disabled: every call computes a fresh hash. Enabled: each hash is computed
// once per process and reused. A literal pins every hash to one fixed value,
// which lets a deployment serve a single version for all assets.
type FreezeMode struct {
	enabled bool
	literal string
}

// FreezeOff recomputes hashes on every call.
var FreezeOff = FreezeMode{}

// FreezeOn computes each hash once per process.
var FreezeOn = FreezeMode{enabled: true}

// FreezeLiteral pins all hashes to the given value.
func FreezeLiteral(value string) FreezeMode {
	return FreezeMode{enabled: true, literal: value}
}

// ParseFreezeMode interprets a configuration value. Boolean-looking strings
// toggle freezing; any other non-empty value is treated as a literal token.
func ParseFreezeMode(value string) FreezeMode {
	switch value {
	case "", "false", "no", "off", "0":
		return FreezeOff
	case "true", "yes", "on", "1":
		return FreezeOn
	default:
		return FreezeLiteral(value)
	}
}

// Enabled reports whether hashes are memoized for the process lifetime.
func (f FreezeMode) Enabled() bool {
	return f.enabled
}

// Literal returns the pinned token and whether one is configured.
func (f FreezeMode) Literal() (string, bool) {
	return f.literal, f.literal != ""
}
