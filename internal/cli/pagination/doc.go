// Package pagination turns the paging and sorting flags of list commands into
// engine view options, and describes the resulting page as metadata for
// machine readable output.
//
//   - PaginationParams: --page, --page-size, --sort and --search parsing and validation
//   - ParseSort: "field[:order]" sort expressions
//   - PaginationMeta: the pagination block of JSON output
package pagination
