package utils

import (
	"time"
)

// Session constants
const (
	// SessionTTL is the default lifetime of a session token and its cookie (24 hours)
	SessionTTL = 24 * time.Hour

	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "token"
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Lead listing constants
const (
	DefaultPage      = 1
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// MaxExportRows caps the number of leads written to a single export workbook
	MaxExportRows = 10000
)
