package io

import (
	"fmt"
	"strconv"

	"github.com/phil-mansfield/effarea"
)

// ArgumentCountError is returned when the wrong number of positional
// arguments is given.
type ArgumentCountError struct {
	Got, Want int
}

func (err *ArgumentCountError) Error() string {
	return fmt.Sprintf(
		"Expected exactly %d arguments (radius and height), but got %d.",
		err.Want, err.Got,
	)
}

// ArgumentParseError is returned when a positional argument is not a
// number.
type ArgumentParseError struct {
	Name, Value string
	Err error
}

func (err *ArgumentParseError) Error() string {
	return fmt.Sprintf(
		"%s must be a valid number, but is '%s'.", err.Name, err.Value,
	)
}

func (err *ArgumentParseError) Unwrap() error { return err.Err }

// ParseArgs parses the positional arguments "radius height". An
// effarea.ArgumentRangeError is returned if either is not positive and
// finite.
func ParseArgs(args []string) (radius, height float64, err error) {
	if len(args) != 2 {
		return 0, 0, &ArgumentCountError{ Got: len(args), Want: 2 }
	}

	radius, err = parseArg("radius", args[0])
	if err != nil { return 0, 0, err }
	height, err = parseArg("height", args[1])
	if err != nil { return 0, 0, err }

	if err = effarea.CheckDimensions(radius, height); err != nil {
		return 0, 0, err
	}
	return radius, height, nil
}

func parseArg(name, arg string) (float64, error) {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, &ArgumentParseError{ Name: name, Value: arg, Err: err }
	}
	return x, nil
}
