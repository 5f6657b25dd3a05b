package csv

import (
	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of parsing one file in a batch.
// Exactly one of Records and Err is set.
type FileResult struct {
	Path    string
	Records [][]string
	Err     error
}

// ParseFiles parses every path with ParseFromFile, up to opts.Workers files
// at a time. A failing file does not stop the batch; its error is reported in
// its FileResult. Results are returned in the order of paths.
//
// Example:
//
//	for _, res := range csv.ParseFiles(paths, csv.DefaultFileOptions()) {
//	    if res.Err != nil {
//	        log.Printf("skip %s: %v", res.Path, res.Err)
//	        continue
//	    }
//	    process(res.Records)
//	}
func ParseFiles(paths []string, opts FileOptions) []FileResult {
	results := make([]FileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(opts.workers())
	for i, path := range paths {
		g.Go(func() error {
			records, err := ParseFromFile(path, opts.Delimiter, opts.Encoding)
			results[i] = FileResult{Path: path, Records: records, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
