// Package naming defines the hierarchical names given to hardware
// components, such as "Node[0].CPU[1]".
package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Name is a hierarchical name that includes a series of tokens separated
// by dots.
type Name struct {
	Tokens []Token
}

// Token is one element of a name, with optional indices.
type Token struct {
	ElemName string
	Index    []int
}

// String rebuilds the dotted form of the name.
func (n Name) String() string {
	parts := make([]string, len(n.Tokens))
	for i, t := range n.Tokens {
		parts[i] = BuildWithMultiDimensionalIndex("", t.ElemName, t.Index)
	}

	return strings.Join(parts, ".")
}

// Parse parses a name string into tokens. It only checks the syntax of
// indices; use Validate to check the naming convention.
func Parse(sname string) (Name, error) {
	tokens := strings.Split(sname, ".")
	name := Name{Tokens: make([]Token, len(tokens))}

	for i, token := range tokens {
		t, err := parseToken(token)
		if err != nil {
			return Name{}, err
		}

		name.Tokens[i] = t
	}

	return name, nil
}

func parseToken(token string) (Token, error) {
	if err := bracketsMustMatch(token); err != nil {
		return Token{}, err
	}

	ts := strings.Split(token, "[")
	elemName := ts[0]

	indices := make([]int, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		if !strings.HasSuffix(ts[i], "]") {
			return Token{}, errors.New("name index must be closed by ]")
		}

		index, err := strconv.Atoi(ts[i][0 : len(ts[i])-1])
		if err != nil {
			return Token{}, errors.New("name index must be integer")
		}

		indices[i-1] = index
	}

	return Token{ElemName: elemName, Index: indices}, nil
}

func bracketsMustMatch(name string) error {
	open := 0
	for _, c := range name {
		switch c {
		case '[':
			open++
		case ']':
			open--
			if open < 0 {
				return errors.New("name bracket must match")
			}
		}
	}

	if open != 0 {
		return errors.New("name bracket must match")
	}

	return nil
}

// Validate returns an error if the name does not follow the naming
// convention:
//  1. Names are hierarchical, e.g. "A.B.C". "A.B.C." is not valid.
//  2. Individual elements must not be empty. "A..B" is not valid.
//  3. Elements are capitalized CamelCase. "A.b" is not valid.
//  4. Elements in a series use square-bracket notation, e.g. "Disk[2]".
func Validate(name string) error {
	n, err := Parse(name)
	if err != nil {
		return fmt.Errorf("name %q is not valid: %w", name, err)
	}

	for _, token := range n.Tokens {
		if err := validateToken(token); err != nil {
			return fmt.Errorf("name %q is not valid: %w", name, err)
		}
	}

	return nil
}

// MustBeValid panics if the name does not follow the naming convention.
func MustBeValid(name string) {
	if err := Validate(name); err != nil {
		panic(err)
	}
}

func validateToken(token Token) error {
	if token.ElemName == "" {
		return errors.New("name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-", " "} {
		if strings.Contains(token.ElemName, c) {
			return fmt.Errorf("name element must not contain %q", c)
		}
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		return errors.New("name element must start with a capital letter")
	}

	return nil
}

// Build builds a name from a parent name and an element name.
func Build(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildWithIndex builds a name from a parent name, an element name and an
// index.
func BuildWithIndex(parentName, elementName string, index int) string {
	return Build(parentName, elementName+"["+strconv.Itoa(index)+"]")
}

// BuildWithMultiDimensionalIndex builds a name from a parent name, an element
// name and a multi-dimensional index.
func BuildWithMultiDimensionalIndex(
	parentName, elementName string,
	index []int,
) string {
	name := Build(parentName, elementName)

	for _, i := range index {
		name += "[" + strconv.Itoa(i) + "]"
	}

	return name
}
