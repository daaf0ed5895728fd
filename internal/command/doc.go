// Package command turns lines typed by the user into address-book operations.
//
// A line is split on whitespace into a keyword and its arguments (Parse). The
// keyword selects a Handler from a Registry; the Dispatcher runs it against
// the Session and renders whatever error comes back into the text shown to
// the user (Render). No error reaching the Dispatcher stops the loop; only
// the close and exit keywords do.
package command
