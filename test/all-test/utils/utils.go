package utils

import (
    "fmt"
    "github.com/fatih/color"
)

var green = color.New(color.FgGreen).SprintFunc()
var red = color.New(color.FgRed).SprintFunc()

func Success(message string) string {
    return fmt.Sprintf("%v %v", message, green("passed"))
}

func Failure(message string) string {
    return fmt.Sprintf("%v %v", message, red("failed"))
}

/* a test that could not even run to a verdict */
func Fault(message string, err error) string {
    return fmt.Sprintf("%v %v: %v", message, red("errored"), err)
}
