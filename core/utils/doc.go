// Package utils holds decoding helpers for loosely typed upstream JSON:
// tolerant int/bool scalars (FlexInt, FlexBool) and conversions from raw JSON
// values to the column values the catalog stores (RawText, JSONValue).
package utils
