package extract

import (
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/features"
)

// runPool fans the input rows out to workerCount goroutines and
// reassembles the feature records in input order. The extractor is a
// pure function, so rows need no coordination beyond index-keyed
// collection; output order always matches input order so features stay
// aligned with their labels.
func runPool(logger *slog.Logger, workerCount int, urls []string, bar *progressbar.ProgressBar) []models.FeatureRecord {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, &wg, jobs, results, bar)
	}

	for i, url := range urls {
		jobs <- Job{Index: i, URL: url}
	}
	close(jobs)

	wg.Wait()
	close(results)

	records := make([]models.FeatureRecord, len(urls))
	for result := range results {
		records[result.Index] = result.Record
	}
	return records
}

// worker drains the jobs channel. Extraction cannot fail: a malformed
// URL degrades to default features for that row, never an error.
func worker(id int, logger *slog.Logger, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, bar *progressbar.ProgressBar) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker processing row", "worker_id", id, "row", job.Index, "url", job.URL)
		results <- Result{
			Index:  job.Index,
			URL:    job.URL,
			Record: features.Extract(job.URL),
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
}
