package model

type Flags struct {
	// Verbose enables debug logging, including Azure SDK HTTP traffic.
	Verbose bool

	// File points at an existing report file to process, skipping the
	// interactive menu.
	File string

	// Period is an optional report period in YYYYMM form.
	Period string

	// Output overrides the generated workbook filename.
	Output string
}
