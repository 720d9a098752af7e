// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package term

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Progress runs fn while animating "activity..." on w, then replaces the
// animation with a summary of how long the activity took. Sampling a large
// sequence can take up to the whole wall-clock budget, and without feedback
// the inspector looks hung.
func Progress(w io.Writer, activity string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	// Hiding the cursor would require Stop() to run even when the process is
	// interrupted, and the inspector must not install signal handlers.
	s.HideCursor = false
	if err := s.Color("cyan"); err != nil {
		return err
	}
	s.Suffix = " " + activity + "..."
	start := time.Now()
	s.Start()
	err := fn()
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		s.FinalMSG = fmt.Sprintf("\r%s failed after %s\n", activity, elapsed)
	} else {
		s.FinalMSG = fmt.Sprintf("\r%s took %s\n", activity, elapsed)
	}
	s.Stop()
	return err
}
