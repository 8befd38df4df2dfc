package config

import "fmt"

// Settable configuration keys exposed through "zonekeeper config set".
const (
	KeyZoneID    = "zone-id"
	KeyRegion    = "region"
	KeyProfile   = "profile"
	KeyRuleset   = "ruleset"
	KeyExportDir = "export-dir"
)

// Keys lists all settable keys, in display order.
func Keys() []string {
	return []string{KeyZoneID, KeyRegion, KeyProfile, KeyRuleset, KeyExportDir}
}

// Get returns the value of a key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyZoneID:
		return c.ZoneID, nil
	case KeyRegion:
		return c.Region, nil
	case KeyProfile:
		return c.Profile, nil
	case KeyRuleset:
		return c.RulesetPath, nil
	case KeyExportDir:
		return c.ExportDir, nil
	}
	return "", fmt.Errorf("config: unknown key %q", key)
}

// Set assigns a value to a key. The caller is responsible for saving.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyZoneID:
		c.ZoneID = value
	case KeyRegion:
		c.Region = value
	case KeyProfile:
		c.Profile = value
	case KeyRuleset:
		c.RulesetPath = value
	case KeyExportDir:
		c.ExportDir = value
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}
