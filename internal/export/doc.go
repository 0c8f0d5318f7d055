// Package export persists the accepted catalog records as row-oriented
// tabular files. Two sinks produce identical content in different
// serializations: a delimited-text CSV file and an XLSX spreadsheet.
package export
