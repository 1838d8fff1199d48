// Package bus implements the action-dispatch bus the translator sends every
// request to.
//
// A pattern is a comma separated list of key:value pairs, e.g.
// "role:web,cmd:ping". [Local] dispatches in process to the most specific
// registered action whose pairs are all present in the requested pattern.
// [Remote] forwards the call to another service over HTTP.
package bus
