package model

// Package model defines the catalog data structures shared by every surface:
// sample entries, media kinds and the normalization of loosely-typed raw
// records. Entries are plain values and are never mutated after normalization.
