// Package provider defines the AI backend interface and implementations.
package provider

import "github.com/codforge/codforge"

// AIProvider is the interface for generative AI backends.
// This is an alias to the main package interface for convenience.
type AIProvider = codforge.AIProvider

// JSONRequest is an alias to the main package type.
type JSONRequest = codforge.JSONRequest

// ImageRequest is an alias to the main package type.
type ImageRequest = codforge.ImageRequest

// ReferenceImage is an alias to the main package type.
type ReferenceImage = codforge.ReferenceImage
