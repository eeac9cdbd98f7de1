// Package rules defines the skincare rule catalog: the fixed skin type,
// concern, and routine enumerations, the guideline text synthesizer, and
// the deterministic generator that assembles the full ordered catalog.
package rules
