package clean

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Summary describes a clean run
type Summary struct {
	// In is the path of the input node file
	In string `json:"in"`

	// Out is the path of the output node file
	Out string `json:"out"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// MinCoverage and MinLength are the tip removal thresholds used
	MinCoverage float64 `json:"minCoverage"`
	MinLength   int     `json:"minLength"`

	// InputFragments and InputBases are counted before cleaning
	InputFragments int `json:"inputFragments"`
	InputBases     int `json:"inputBases"`

	// OutputFragments and OutputBases are counted after cleaning
	OutputFragments int `json:"outputFragments"`
	OutputBases     int `json:"outputBases"`

	// Tips is the number of fragments removed as tips
	Tips int `json:"tips"`

	// Merges is the number of fragments merged into a neighbor
	Merges int `json:"merges"`

	// Dangling is the number of arcs to unknown tips
	Dangling int `json:"dangling"`

	// Duplicated is the number of tip ids found on more than one end
	Duplicated int `json:"duplicated"`
}

// stamp sets the summary's time, using same format as log.Println
func (s *Summary) stamp(t time.Time) {
	s.Time = fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)
}

// writeJSON writes the summary to the filename
func (s *Summary) writeJSON(filename string) error {
	output, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize summary")
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return errors.Wrap(err, "failed to write summary")
	}
	return nil
}
