// Package body reads HTTP request bodies into the generic map form actions
// receive. JSON objects, urlencoded forms and multipart forms are supported.
package body
