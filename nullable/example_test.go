package nullable_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasnullable/nullable"
)

func ExampleConvert() {
	input := "birthday:\n  type: string\n  format: date\n  nullable: true\n"
	fmt.Print(nullable.Convert(input))
	// Output:
	// birthday:
	//   type: [string, "null"]
	//   format: date
}

func ExampleConvertWithOptions() {
	input := strings.Join([]string{
		"properties:",
		"  tag:",
		"    type: string",
		"    nullable: true",
		"  legacy:",
		"    type: string",
		"    nullable: True",
	}, "\n")

	result, err := nullable.ConvertWithOptions(
		nullable.WithText(input),
		nullable.WithIncludeInfo(false),
		nullable.WithCheckYAML(true),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("conversions: %d, valid YAML: %t\n", result.Conversions, result.ValidYAML)
	for _, issue := range result.Issues {
		fmt.Printf("%s %s: %s\n", issue.Severity, issue.Location(), issue.Context)
	}
	// Output:
	// conversions: 1, valid YAML: true
	// warning line 7: only the literal lowercase true is recognized, found "True"
}
