// Package utils provides loose-typed conversion helpers used when
// normalizing raw campaign JSON into canonical configuration values.
package utils
