package strings

import "github.com/iancoleman/strcase"

// ToKebabCase normalizes identifiers for wire-visible names such as
// topics and subscriber names.
func ToKebabCase(s string) string {
	return strcase.ToKebab(s)
}
