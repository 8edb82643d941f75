// Package feed fetches the upstream catalog documents.
//
// A feed is "an HTTP GET returning JSON". Client performs the GET with an
// explicit timeout (the upstream may stall indefinitely otherwise), decodes the
// body into the caller's payload type and classifies failures:
//
//   - *FetchError: transport failure, cancellation or a non-200 status.
//   - *DecodeError: the body is not valid JSON or not the expected shape.
//
// Either error means the caller must not touch the store for that feed.
//
// When an Archive is attached, every successfully read body is uploaded to
// object storage before decoding. Archive failures are logged and never fail
// the fetch.
package feed
