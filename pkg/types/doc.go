// Package types defines the entity types of the nodelist program: the
// process state machine, permission bitfield, 4-byte data value, the node
// record, run configuration, and the standard errors shared by the
// internal packages.
package types
