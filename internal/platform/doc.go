// Package platform contains OS/platform integration: filesystem helpers, the
// default location of the group log, logo file checks, and OS open/reveal.
package platform
