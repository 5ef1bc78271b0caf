package testcases

// All contains all test cases, keyed by category.
var All = map[string][]TestCase{
	"scenario": scenarioCases,
}
