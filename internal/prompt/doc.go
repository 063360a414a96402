// Package prompt defines the question capability the generator consumes:
// single-choice lists, free-text input with an optional validator, and yes/no
// confirmations. The default implementation renders questions with survey;
// tests swap in prompttest.Script.
package prompt
