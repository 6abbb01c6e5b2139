package response

// TablePreview is the head of a table rendered on the batch and analytics pages
type TablePreview struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}

// BatchResult describes one completed batch run
type BatchResult struct {
	RunID     string       `json:"run_id"`
	Rows      int          `json:"rows"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	FileName  string       `json:"file_name"`
	Input     TablePreview `json:"input"`
	Output    TablePreview `json:"output"`
	// Workbook is the augmented table encoded as .xlsx
	Workbook []byte `json:"-"`
}
