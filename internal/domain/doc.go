// Package domain contains the core request and result types of the content
// generation service: the enumerated operations, the request payload, the
// structured blog post produced by the full-post operation, and the
// validation errors raised before any external call is made. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
