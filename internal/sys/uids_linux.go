package sys

// RegularUIDRange returns the uid range regular accounts occupy. Most Linux
// distributions start regular users at 1000.
func (*OSSystem) RegularUIDRange() (uint32, uint32) {
	return 1000, 1100
}
