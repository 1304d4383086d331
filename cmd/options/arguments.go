package options

// Arguments represents command line arguments
type Arguments []string

// IsHelp returns true if help was requested
func (a Arguments) IsHelp() bool {
	for _, arg := range a {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Command returns command name
func (a Arguments) Command() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}
