// Package prompt asks the user questions one line at a time. The Prompter
// interface lets the configuration and scaffold steps run against stdin in
// production and against a fixed script in tests.
package prompt
