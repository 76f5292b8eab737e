package clean

// Prompter asks the user a blocking yes/no question. An answer is required;
// pressing enter picks the default.
type Prompter interface {
	Confirm(question string, defaultAnswer bool) (bool, error)
}
