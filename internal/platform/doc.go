package platform

// Package platform contains OS integration glue: opening sample and code
// links in the system browser and locating per-user config files.
