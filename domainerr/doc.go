/*
Package domainerr provides a domain and code view of any error.

Tests often need to compare errors that are not comparable values: wrapped
errors, structs holding maps, or errors from other packages. Error reduces
such an error to a domain string and an integer code, and two Errors are
considered the same failure when both match.

Errors that implement Coded report their own domain and code. Any other error
is given the fully qualified name of its Go type as the domain and the code 1.
*/
package domainerr
