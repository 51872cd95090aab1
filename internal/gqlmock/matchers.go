package gqlmock

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Khan/genqlient/graphql"
	json "github.com/wandb/simplejsonext"
	"go.uber.org/mock/gomock"
)

// WithOpName matches any GraphQL request with the given OpName.
func WithOpName(opName string) gomock.Matcher {
	return &opNameMatcher{opName}
}

type opNameMatcher struct {
	opName string
}

func (m *opNameMatcher) Matches(x any) bool {
	req, ok := x.(*graphql.Request)
	if !ok {
		return false
	}

	return req.OpName == m.opName
}

func (m *opNameMatcher) String() string {
	return fmt.Sprintf("has OpName '%v'", m.opName)
}

// WithVariables matches a GraphQL request whose variables match all the
// given matchers.
func WithVariables(varMatchers ...*gqlVarMatcher) gomock.Matcher {
	return &variablesMatcher{varMatchers}
}

type variablesMatcher struct {
	varMatchers []*gqlVarMatcher
}

func (m *variablesMatcher) Matches(x any) bool {
	req, ok := x.(*graphql.Request)
	if !ok {
		return false
	}

	varmap := jsonMarshallToMap(req.Variables)
	if varmap == nil {
		return false
	}

	for _, variable := range m.varMatchers {
		value, found := variable.Extract(varmap)
		if !found || !variable.Value.Matches(value) {
			return false
		}
	}

	return true
}

func (m *variablesMatcher) String() string {
	parts := make([]string, 0, len(m.varMatchers))
	for _, variable := range m.varMatchers {
		parts = append(parts, variable.String())
	}
	return strings.Join(parts, " and ")
}

// GQLVar refers to a variable in a GraphQL request.
//
// The path is dot-separated and indexes into nested request variables, as in
// "input.entityName".
func GQLVar(path string, value gomock.Matcher) *gqlVarMatcher {
	return &gqlVarMatcher{Path: path, Value: value}
}

type gqlVarMatcher struct {
	// Path is the dot-separated path of the variable.
	Path string

	// Value is the expected value of the variable.
	Value gomock.Matcher
}

func (m *gqlVarMatcher) String() string {
	return fmt.Sprintf("variable %s matches <%v>", m.Path, m.Value)
}

// Extract returns the value at the matcher's path in the variable map.
//
// The second return value is false if the path is not present.
func (m *gqlVarMatcher) Extract(varmap map[string]any) (any, bool) {
	current := any(varmap)

	for _, part := range strings.Split(m.Path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = currentMap[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// JSONEq matches a string or byte slice that parses to the given JSON value.
func JSONEq(expectedJSON string) gomock.Matcher {
	return &jsonEqMatcher{expectedJSON}
}

type jsonEqMatcher struct {
	expectedJSON string
}

func (m *jsonEqMatcher) Matches(x any) bool {
	var actualStr string
	switch actual := x.(type) {
	case string:
		actualStr = actual
	case []byte:
		actualStr = string(actual)
	default:
		return false
	}

	expected, err := json.UnmarshalString(m.expectedJSON)
	if err != nil {
		return false
	}

	actualValue, err := json.UnmarshalString(actualStr)
	if err != nil {
		return false
	}

	return reflect.DeepEqual(expected, actualValue)
}

func (m *jsonEqMatcher) String() string {
	return fmt.Sprintf("is the JSON value %s", m.expectedJSON)
}
