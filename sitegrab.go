// Package sitegrab provides a recursive web crawler and selective downloader.
// Starting from seed URLs it discovers pages within allow-listed domains and
// paths, selects links matching a download predicate, and streams the matched
// resources to local files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package sitegrab
