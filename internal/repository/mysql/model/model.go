// Package model holds the gorm table mappings.
package model

// All lists every table model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{&User{}, &Token{}, &Article{}, &Comment{}}
}
