// Package shopping scales recipes to a guest count and merges the results
// into a shopping list.
//
// Recipes are written for a reference batch of domain.ReferenceBatchSize
// guests. Scale multiplies every quantity by guestCount/100 and rounds to two
// decimals. Aggregate scales a set of recipes and merges their ingredients
// into unit groups: units keep the order in which they were first seen, names
// are matched case-insensitively and keep the casing of their first
// occurrence. Units are never converted, so "500 g" and "0.5 kg" stay on
// separate lines.
//
// Everything in this package is pure and safe for concurrent use; no state
// survives a call.
package shopping
