package config

import "fmt"

// MissingRequiredValueError reports a mandatory key that is absent or
// empty at resolution time.
type MissingRequiredValueError struct {
	Section string
	Key     string
}

func (e *MissingRequiredValueError) Error() string {
	return fmt.Sprintf("config %s.%s must be provided", e.Section, e.Key)
}

// UnknownScopeTokenError reports a scope token that does not belong to
// the fixed scope enumeration.
type UnknownScopeTokenError struct {
	Key   string
	Token string
}

func (e *UnknownScopeTokenError) Error() string {
	return fmt.Sprintf("config %s.%s: unknown scope %q", Section, e.Key, e.Token)
}

// DuplicateScopeKeyError reports two scope-group definitions resolving
// to the same name.
type DuplicateScopeKeyError struct {
	Name string
}

func (e *DuplicateScopeKeyError) Error() string {
	return fmt.Sprintf("config %s: duplicate scope group %q", Section, e.Name)
}
