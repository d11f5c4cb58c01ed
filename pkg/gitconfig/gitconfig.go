package gitconfig

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a git-config-shaped key/value store: sections contain keys,
// optionally qualified by a subsection. Values are strings; typed reads
// are provided for the few value kinds the resolver needs. The store is
// populated once (from a file or via Set/Add) and read-only afterwards.
type Config struct {
	sections map[string]map[string][]string
}

// New returns an empty store.
func New() *Config {
	return &Config{sections: map[string]map[string][]string{}}
}

// Set replaces the values of a key with a single value.
func (c *Config) Set(section, subsection, key, value string) {
	name := qualifiedKey(subsection, key)
	sec := c.section(section)
	sec[name] = []string{value}
}

// Add appends a value to a key, keeping earlier values.
func (c *Config) Add(section, subsection, key, value string) {
	name := qualifiedKey(subsection, key)
	sec := c.section(section)
	sec[name] = append(sec[name], value)
}

// GetString returns the last value of a key and whether the key exists.
func (c *Config) GetString(section, subsection, key string) (string, bool) {
	sec, ok := c.sections[strings.ToLower(section)]
	if !ok {
		return "", false
	}
	values, ok := sec[qualifiedKey(subsection, key)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// GetInt returns a key's value parsed as an integer, or def when the
// key is absent or not numeric.
func (c *Config) GetInt(section, key string, def int) int {
	raw, ok := c.GetString(section, "", key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// GetDuration returns a key's value parsed as a duration. Values accept
// Go duration syntax ("45s", "1m") or a bare number scaled by unit.
// Absent or unparsable values yield def.
func (c *Config) GetDuration(section, subsection, key string, def, unit time.Duration) time.Duration {
	raw, ok := c.GetString(section, subsection, key)
	if !ok {
		return def
	}
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(n) * unit
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return def
}

// GetNames returns the key names of a section in sorted order. With
// recursive set, subsection-qualified names are included; otherwise
// only unqualified keys are returned.
func (c *Config) GetNames(section string, recursive bool) []string {
	sec, ok := c.sections[strings.ToLower(section)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sec))
	for name := range sec {
		if !recursive && strings.Contains(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) section(name string) map[string][]string {
	if c.sections == nil {
		c.sections = map[string]map[string][]string{}
	}
	name = strings.ToLower(name)
	sec, ok := c.sections[name]
	if !ok {
		sec = map[string][]string{}
		c.sections[name] = sec
	}
	return sec
}

func qualifiedKey(subsection, key string) string {
	if subsection == "" {
		return key
	}
	return subsection + "." + key
}

// Load reads a store from a YAML file. Top-level mappings are sections;
// nested mappings are subsections; list values become multi-values.
// Environment references of the form ${VAR} are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(data))
	var raw map[string]map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, err
	}

	cfg := New()
	for section, keys := range raw {
		for key, value := range keys {
			if nested, ok := value.(map[string]any); ok {
				for subKey, subValue := range nested {
					if err := addValue(cfg, section, key, subKey, subValue); err != nil {
						return nil, err
					}
				}
				continue
			}
			if err := addValue(cfg, section, "", key, value); err != nil {
				return nil, err
			}
		}
	}
	return cfg, nil
}

func addValue(cfg *Config, section, subsection, key string, value any) error {
	switch v := value.(type) {
	case nil:
		cfg.Add(section, subsection, key, "")
	case []any:
		for _, item := range v {
			if _, ok := item.(map[string]any); ok {
				return fmt.Errorf("config key %s.%s: nested mapping inside list is not supported", section, key)
			}
			cfg.Add(section, subsection, key, scalarString(item))
		}
	case map[string]any:
		return fmt.Errorf("config key %s.%s: mapping nested below a subsection is not supported", section, key)
	default:
		cfg.Add(section, subsection, key, scalarString(v))
	}
	return nil
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
