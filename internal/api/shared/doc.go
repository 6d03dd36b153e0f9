// Package shared holds the request decoding, validation, response writing
// and trace-ID helpers used by every HTTP handler and middleware.
package shared
