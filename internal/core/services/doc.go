// Package services contains the core business logic, implementing the
// driving ports. Services depend only on domain types, driven ports
// and the nlp packages; they know nothing about storage engines or
// user interfaces.
package services
