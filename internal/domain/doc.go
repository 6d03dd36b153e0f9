// Package domain contains the core business entities and domain rules of the
// task service, independent of storage and transport.
package domain
