// Package obfeed turns the rendered home page of an Overblog-style French
// blog into an Atom or RSS feed. It locates the blog identity in the
// page's embedded analytics data layer, extracts each article block, and
// normalizes localized dates and bylines into feed entries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, dateparse/, feeds/).
package obfeed
