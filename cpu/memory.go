package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat address space shared by code and stack.
type Memory [MEMORY_SIZE]byte

// Read the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrOutOfBounds(address)
		return
	}

	value = mem[address]
	return
}

// Write the byte at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrOutOfBounds(address)
		return
	}

	mem[address] = value
	return
}
