// Package service implements the business operations of the task service on
// top of the store interfaces. Services validate input, translate store errors
// into service-level sentinels and log domain events; they know nothing about
// HTTP.
package service
