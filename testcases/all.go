package testcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]Scenario{
	"straight": straightCases,
	"curve":    curveCases,
	"flip":     flipCases,
	"offline":  offlineCases,
	"pitch":    pitchCases,
	"size":     sizeCases,
	"cull":     cullCases,
}
