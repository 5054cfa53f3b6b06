package types

// Permissions packs the readable, writable and executable flags of a node
// into one byte. The flags are independent and carry no file-system meaning.
type Permissions uint8

// Permission bits.
const (
	PermReadable Permissions = 1 << iota
	PermWritable
	PermExecutable
)

// DefaultPermissions is the fixed policy applied to every new node:
// readable, not writable, executable.
const DefaultPermissions = PermReadable | PermExecutable

// Readable reports whether the readable bit is set.
func (p Permissions) Readable() bool { return p&PermReadable != 0 }

// Writable reports whether the writable bit is set.
func (p Permissions) Writable() bool { return p&PermWritable != 0 }

// Executable reports whether the executable bit is set.
func (p Permissions) Executable() bool { return p&PermExecutable != 0 }

// Bit returns 1 if flag is set in p and 0 otherwise.
func (p Permissions) Bit(flag Permissions) uint8 {
	if p&flag != 0 {
		return 1
	}
	return 0
}
