// Package hndigest generates a daily reading digest of Hacker News: the
// previous UTC day's top stories, each paired with its linked article
// reduced to readable content and a handful of its most discussed
// comments, rendered into a single dated artifact.
//
// This package defines the domain types and service interfaces. Concrete
// implementations live in subpackages named after their primary dependency
// (algolia, firebase, trafilatura, goquery, and so on) and are wired
// together by the hndigest command.
package hndigest
