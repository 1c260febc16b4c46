package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// FeatureFlags manages feature toggles for the assistant bot. Defaults are
// compiled in and can be overridden with FEATURE_<NAME>=true|false.
type FeatureFlags struct {
	features map[string]*Feature
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool
}

// Predefined feature flag names.
const (
	// === Birthday Features ===
	FeatureBirthdaysWrapYear = "birthdays.wrap_year" // Roll the birthday window into next year

	// === Command Features ===
	FeatureCommandBirthdays = "commands.birthdays" // "birthdays" command
	FeatureCommandDelete    = "commands.delete"    // "delete" command
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := NewFeatureFlags()
	ff.loadFromEnvironment()
	return ff
}

// NewFeatureFlags returns the compiled-in defaults without reading the
// environment.
func NewFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{features: make(map[string]*Feature)}
	ff.initializeDefaults()
	return ff
}

// initializeDefaults sets up all features with default values.
func (ff *FeatureFlags) initializeDefaults() {
	// Off: a December check must not report January birthdays unless asked.
	ff.features[FeatureBirthdaysWrapYear] = &Feature{
		Name:        FeatureBirthdaysWrapYear,
		Description: "Use next year's birthday once this year's has passed",
		Enabled:     false,
	}

	ff.features[FeatureCommandBirthdays] = &Feature{
		Name:        FeatureCommandBirthdays,
		Description: "List contacts with a birthday in the next 7 days",
		Enabled:     true,
	}

	ff.features[FeatureCommandDelete] = &Feature{
		Name:        FeatureCommandDelete,
		Description: "Delete a contact by name",
		Enabled:     true,
	}
}

// loadFromEnvironment loads feature flag overrides from env vars.
// Format: FEATURE_<NAME>=true|false
// Example: FEATURE_BIRTHDAYS_WRAP_YEAR=true
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		val := os.Getenv(featureNameToEnvKey(name))
		if val == "" {
			continue
		}
		if b, err := strconv.ParseBool(val); err == nil {
			feature.Enabled = b
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "birthdays.wrap_year" -> "FEATURE_BIRTHDAYS_WRAP_YEAR"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled reports whether a feature is on. Unknown features are off.
func (ff *FeatureFlags) IsEnabled(featureName string) bool {
	if ff == nil {
		return false
	}
	feature, ok := ff.features[featureName]
	return ok && feature.Enabled
}

// EnableFeature turns a feature on.
func (ff *FeatureFlags) EnableFeature(featureName string) error {
	return ff.set(featureName, true)
}

// DisableFeature turns a feature off.
func (ff *FeatureFlags) DisableFeature(featureName string) error {
	return ff.set(featureName, false)
}

func (ff *FeatureFlags) set(featureName string, enabled bool) error {
	feature, ok := ff.features[featureName]
	if !ok {
		return ErrFeatureNotFound
	}
	feature.Enabled = enabled
	return nil
}

// EnabledNames returns the sorted names of all enabled features.
func (ff *FeatureFlags) EnabledNames() []string {
	names := make([]string, 0, len(ff.features))
	for name, f := range ff.features {
		if f.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// --- Errors ---

var (
	ErrFeatureNotFound = &FeatureFlagError{Message: "feature not found"}
)

// FeatureFlagError represents a feature flag error.
type FeatureFlagError struct {
	Message string
}

func (e *FeatureFlagError) Error() string {
	return e.Message
}
