// Package status models the three independent status vocabularies spoken by
// the backend systems (CMS order status, ROS route status, WMS package
// status) as closed tagged sets, plus the canonical order state derived
// from them.
//
// Raw backend strings are parsed into these sets at the gateway boundary.
// Parsing is case-insensitive and total: anything outside a vocabulary maps
// to that vocabulary's Unrecognized value, which downstream code reports as
// "unknown". Raw strings never travel past the gateways.
package status
