// Package gallery turns downloaded records into the offline HTML page:
// a pure grouping step (year, then month, newest first) followed by a
// template render with inline CSS and a collapsible-month accordion.
package gallery
