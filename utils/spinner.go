package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func StartSpinner(suffix string) {
	activeSpinner.Suffix = " " + suffix
	activeSpinner.Start()
}

func StopSpinner() {
	activeSpinner.Stop()
}
