// Package domain contains the core business entities of the agency: the
// services it offers, the users it manages, and the roles those users hold.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
