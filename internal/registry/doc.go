// Package registry tracks the mutable state of the ring: per-server
// load counters with full flags and contained-object sets, and
// per-object current slots with ordered probe histories. All mutation
// of placement state flows through these two registries.
package registry
