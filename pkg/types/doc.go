// Package types defines the data shared between the monitor, the renderers
// and the command layer: handled clipboard events and the display form of
// rewrite rules.
package types
