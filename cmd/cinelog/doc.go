// Command cinelog drives the offline journal-linking passes: building the
// normalized catalog from the bulk dataset dumps, building the persisted
// group index, linking the watch journal against it, and reporting
// duplicates and entries that need manual attention.
package main
