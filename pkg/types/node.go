package types

import (
	"math"
	"unicode/utf8"
)

// NameCapacity is the maximum length of a node name in bytes.
const NameCapacity = 31

// MaxNodeID is the largest id magnitude whose value id*10 fits in an int32.
const MaxNodeID = math.MaxInt32 / 10

// Node is one record of the node list.
// Links between nodes are owned by the list, not by the node.
type Node struct {
	ID    int32
	Name  string      // At most NameCapacity bytes.
	Perms Permissions // Always DefaultPermissions on creation.
	Value DataValue   // Integer view is ID * 10.
}

// NewNode builds a node with the given id and name. The name is truncated
// to NameCapacity, the value is set to id*10 and the permissions to
// DefaultPermissions.
func NewNode(id int32, name string) Node {
	return Node{
		ID:    id,
		Name:  TruncateName(name),
		Perms: DefaultPermissions,
		Value: IntValue(id * 10),
	}
}

// TruncateName cuts name to at most NameCapacity bytes without splitting a
// UTF-8 sequence.
func TruncateName(name string) string {
	if len(name) <= NameCapacity {
		return name
	}
	cut := NameCapacity
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
