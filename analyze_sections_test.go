package mustacheusage_test

import (
	"testing"

	"github.com/theothertomelliott/mustacheusage"
)

func TestAnalyzeSections(t *testing.T) {
	var tests = []analyzeTest{
		{
			name:     "simple section",
			template: `{{#show}}visible{{/show}}`,
			expected: mustacheusage.Usage{
				"show": {Section: true, NonInverted: true},
			},
		},
		{
			name:     "inverted section",
			template: `{{^missing}}fallback{{/missing}}`,
			expected: mustacheusage.Usage{
				"missing": {Section: true, Inverted: true},
			},
		},
		{
			name:     "both polarities accumulate on one record",
			template: `{{#x}}yes{{/x}}{{^x}}no{{/x}}`,
			expected: mustacheusage.Usage{
				"x": {Section: true, NonInverted: true, Inverted: true},
			},
		},
		{
			name:     "section body references nest loosely",
			template: `{{#person}}{{name}}{{/person}}`,
			expected: mustacheusage.Usage{
				"person": {
					Section:     true,
					NonInverted: true,
					Nested: mustacheusage.Usage{
						"name": {Scalar: true, Escaped: true},
					},
				},
			},
		},
		{
			name:     "dotted section condition",
			template: `{{#a.b}}{{c}}{{/a.b}}`,
			expected: mustacheusage.Usage{
				"a": {
					Members: mustacheusage.Usage{
						"b": {
							Section:     true,
							NonInverted: true,
							Nested: mustacheusage.Usage{
								"c": {Scalar: true, Escaped: true},
							},
						},
					},
				},
			},
		},
	}
	testAnalyze(t, tests)
}

func TestAnalyzeDotConvention(t *testing.T) {
	var tests = []analyzeTest{
		{
			name:     "dot reference proves the section is an array",
			template: `{{#tags}}{{.}}{{/tags}}`,
			expected: mustacheusage.Usage{
				"tags": {
					Section:     true,
					NonInverted: true,
					Array:       true,
					Elements:    &mustacheusage.Variable{Scalar: true, Escaped: true},
				},
			},
		},
		{
			name:     "unescaped dot reference",
			template: `{{#tags}}{{{.}}}{{/tags}}`,
			expected: mustacheusage.Usage{
				"tags": {
					Section:     true,
					NonInverted: true,
					Array:       true,
					Elements:    &mustacheusage.Variable{Scalar: true, Unescaped: true},
				},
			},
		},
		{
			name:     "dot section walks element scope",
			template: `{{#rows}}{{#.}}{{cell}}{{/.}}{{/rows}}`,
			expected: mustacheusage.Usage{
				"rows": {
					Section:     true,
					NonInverted: true,
					Array:       true,
					Elements: &mustacheusage.Variable{
						Section:     true,
						NonInverted: true,
						Nested: mustacheusage.Usage{
							"cell": {Scalar: true, Escaped: true},
						},
					},
				},
			},
		},
	}
	testAnalyze(t, tests)
}

func TestAnalyzeArrayLengthConvention(t *testing.T) {
	var tests = []analyzeTest{
		{
			name:     "dotted length access proves array-ness",
			template: `{{#x.length}}{{/x.length}}`,
			expected: mustacheusage.Usage{
				"x": {
					Array: true,
					Members: mustacheusage.Usage{
						"length": {Scalar: true, Section: true, NonInverted: true},
					},
				},
			},
		},
		{
			name:     "bare length inside an array section",
			template: `{{#tags}}{{.}} of {{length}}{{/tags}}`,
			expected: mustacheusage.Usage{
				"tags": {
					Section:     true,
					NonInverted: true,
					Array:       true,
					Members: mustacheusage.Usage{
						"length": {Scalar: true, Escaped: true},
					},
					Elements: &mustacheusage.Variable{Scalar: true, Escaped: true},
				},
			},
		},
		{
			name:     "length as a plain substitution",
			template: `{{x.length}}`,
			expected: mustacheusage.Usage{
				"x": {
					Array: true,
					Members: mustacheusage.Usage{
						"length": {Scalar: true, Escaped: true},
					},
				},
			},
		},
		{
			name:     "length mid-path is an ordinary member",
			template: `{{a.length.b}}`,
			expected: mustacheusage.Usage{
				"a": {
					Members: mustacheusage.Usage{
						"length": {
							Members: mustacheusage.Usage{
								"b": {Scalar: true, Escaped: true},
							},
						},
					},
				},
			},
		},
	}
	testAnalyze(t, tests)
}

func TestAnalyzeLeafSectionsResolveUpward(t *testing.T) {
	var tests = []analyzeTest{
		{
			name:     "section over a scalar name hosts nothing",
			template: `{{name}}{{#name}}{{inner}}{{/name}}`,
			expected: mustacheusage.Usage{
				"name":  {Scalar: true, Escaped: true, Section: true, NonInverted: true},
				"inner": {Scalar: true, Escaped: true},
			},
		},
		{
			name:     "references inside an array section resolve upward",
			template: `{{#tags}}{{.}}{{/tags}}{{#tags}}{{label}}{{/tags}}`,
			expected: mustacheusage.Usage{
				"tags": {
					Section:     true,
					NonInverted: true,
					Array:       true,
					Elements:    &mustacheusage.Variable{Scalar: true, Escaped: true},
				},
				"label": {Scalar: true, Escaped: true},
			},
		},
	}
	testAnalyze(t, tests)
}
