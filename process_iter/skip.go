package process_iter

// isPIDName reports whether name is a kernel-assigned process directory name:
// non-empty and made only of decimal digits.
func isPIDName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
