package dataset

// Record maps column name to the raw text value of one CSV row.
type Record map[string]string

// Table holds the parsed rows of one data file. Records are never
// mutated after load; all statistics are read-only folds over them.
type Table struct {
	Spec      FileSpec
	Records   []Record
	SizeBytes int64
}

// Len returns the number of data rows (header excluded).
func (t *Table) Len() int {
	return len(t.Records)
}
