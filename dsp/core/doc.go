// Package core provides small numeric and slice helpers shared by the
// analysis packages.
package core
