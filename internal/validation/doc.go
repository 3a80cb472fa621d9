// Package validation checks a group draft before a creation run starts. The
// checks are pure and run in a fixed order: group name, logo, phone numbers.
package validation
