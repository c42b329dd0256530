// Package types defines the Shop and BowlLog entity types, the closed
// tasting option sets, collection names, and standard error values shared
// by the Ramen Reality storage and application layers.
package types
