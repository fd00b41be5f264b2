package deeplink

// Param is one query parameter. Order matters when a parameter set is
// rendered, so params travel as slices rather than maps.
type Param struct {
	Key   string
	Value string
}

// OverrideConfig is the static parameter set appended to widget links
// after the standard parameters. The extra entries are empirically
// believed to steer the exchange's internal provider selection toward one
// payment rail; the exchange is an uncontrolled external system and may
// ignore or change behavior around them at any time. Entries use the same
// encoding and omission rules as other optional fields and win on key
// collision with the standard set. Read-only after construction.
type OverrideConfig struct {
	WidgetID string
	Extra    []Param
}

// DefaultOverrides returns the override set observed to bias provider
// selection: force the provider by name, disable the mobile override,
// lock the selection, and force desktop rendering.
func DefaultOverrides(widgetID string) OverrideConfig {
	return OverrideConfig{
		WidgetID: widgetID,
		Extra: []Param{
			{Key: "provider", Value: "mercuryo"},
			{Key: "mobile_override", Value: "false"},
			{Key: "provider_lock", Value: "true"},
			{Key: "desktop_mode", Value: "true"},
		},
	}
}
