// Package ring implements the fixed-size slot table backing a
// bounded-load consistent hash ring. Servers are scattered across the
// table as randomly placed duplicate slots at construction time; the
// slot-to-server mapping is immutable for the table's lifetime, only
// objects move between servers.
package ring
