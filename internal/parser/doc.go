// Package parser turns decrypted save plaintext into a [models.SaveFile].
//
// Structural problems (bytes that are not UTF-8, text that is not JSON) are
// errors. Content problems inside valid JSON never are: every field of the
// typed record is read through one read-or-default combinator, and tool
// entries that do not decode are dropped from the collection.
package parser
