// Package seoscan analyzes web page content for SEO keyword density.
// It fetches rendered pages with a headless browser, strips boilerplate
// markup (navigation, footers, scripts), and computes word, sentence, and
// per-keyword density statistics over the remaining text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/).
package seoscan
