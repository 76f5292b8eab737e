package sys

// RegularUIDRange returns the uid range regular accounts occupy. macOS
// starts regular users at 501.
func (*OSSystem) RegularUIDRange() (uint32, uint32) {
	return 501, 601
}
