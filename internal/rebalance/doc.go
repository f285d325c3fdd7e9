// Package rebalance restores servers to capacity after removals. When
// a removal leaves a previously full server one object short, the
// rebalancer scans live objects for one whose probe history touched a
// slot of that server and pulls it over, cascading into any vacancy
// that move opens on another full server. An object is only ever
// relocated to a slot it legitimately probed, preserving the
// consistent-hashing property of the ring.
package rebalance
