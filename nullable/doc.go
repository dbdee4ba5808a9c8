// Package nullable rewrites OpenAPI 3.0 nullable declarations as OpenAPI 3.1
// type arrays.
//
// OpenAPI 3.0 marks a schema as nullable with a separate keyword:
//
//	  type: string
//	  format: date
//	  nullable: true
//
// OpenAPI 3.1 drops the keyword and lists "null" as a permitted type:
//
//	  type: [string, "null"]
//	  format: date
//
// The conversion is a single pass over the lines of the document. It does not
// parse YAML: a type line starts a group, and the next four lines are searched
// for "nullable: true" at exactly the same indentation. A "format:" line at that
// indentation is kept, the nullable line is removed, and everything else in the
// document is copied unchanged. A key at the same or a shallower indentation
// ends the search. Text that does not match is passed through, so conversion
// never fails.
//
// # Quick Start
//
// Convert text directly:
//
//	out := nullable.Convert(input)
//
// Or use functional options for statistics and diagnostics:
//
//	result, err := nullable.ConvertWithOptions(
//		nullable.WithFilePath("openapi.yaml"),
//		nullable.WithCheckYAML(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// # Diagnostics
//
// Diagnostics never change the output. Info messages record each conversion
// and any "nullable: false" left behind. Warnings flag nullable declarations
// that were not converted (beyond the lookahead window, separated by a sibling
// key, written as "True" or followed by a comment) and lines discarded inside a
// converted group. Errors are only produced by the optional YAML check.
//
// # Limitations
//
// Already-array types, $ref siblings and nullable schemas nested in anyOf or
// oneOf are not handled. A nullable flag more than four lines below its type
// line is never found; this bound is part of the output contract.
package nullable
