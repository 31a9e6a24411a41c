// Package ir provides the intermediate representation of a startup
// continuation body.
//
// Build applies the strategy decision table to an ordered id list and returns
// a Body made of statements and expressions. The body carries no formatting:
// renderers turn it into text as a final step, which keeps the decision table
// testable independently of whitespace.
package ir
