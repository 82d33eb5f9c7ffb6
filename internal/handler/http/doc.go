// Package http implements the REST transport of the decode server.
//
// Routes accept a raw save container (or a JSON document for encoding) as
// the request body and delegate to the service layer. Tracing, access
// logging, compression, body limits and the optional HMAC integrity check
// are applied as chi middleware before a handler runs.
package http
