// Package placement assigns objects to ring slots. An object probes
// pseudo-random slots until it lands on a server below its load cap;
// every probed slot, hit or miss, is recorded in the object's history
// so the rebalancer can later move the object back to any position it
// legitimately could have been routed to.
package placement
