// File: example_test.go
// Title: Example Tests for Error Package Documentation
// Description: Executable examples that serve as both documentation and tests.
//              These examples demonstrate building structured errors and
//              inspecting them through the code helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial example implementation

package error_test

import (
	"fmt"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

func ExampleNew() {
	err := cferror.New("day 32 is out of bounds").
		WithCode(cferror.CodeInvalidDate).
		WithOperation("FromYMD")

	fmt.Println(err.Error())
	fmt.Println(err.Code())
	fmt.Println(err.Severity())
	// Output:
	// day 32 is out of bounds
	// INVALID_DATE
	// low
}

func ExampleWrap() {
	inner := cferror.New("unknown duration unit \"fortnights\"").
		WithCode(cferror.CodeUnitParser)
	err := cferror.Wrap(inner, "decoding time coordinate")

	fmt.Println(err.Error())
	fmt.Println(cferror.IsCode(err, cferror.CodeUnitParser))
	// Output:
	// decoding time coordinate: unknown duration unit "fortnights"
	// true
}
