// Package hodconsole provides a Go client for the HOD administrative console
// backend: managing professors, students, and classes, and running batch
// operations against a REST backend that has no native bulk-update endpoint.
//
// Batch updates fan out one request per entity through a bounded worker
// pool, reporting per-item success and failure plus incremental progress:
//
//	client, _ := hodconsole.New("https://college.example.com/api/v1",
//	    hodconsole.WithToken(token),
//	)
//	report, err := client.Students().BatchUpdate(ctx, ids,
//	    map[string]any{"semester": 5, "division": "A"},
//	    hodconsole.OnProgress(func(p hodconsole.Progress) {
//	        fmt.Printf("\r%d/%d", p.Done, p.Total)
//	    }),
//	)
//	if err == nil && len(report.Failed) > 0 {
//	    // partial failure: inspect report.Failed
//	}
//
// Deletes and class-membership removal use the backend's true bulk
// endpoints: one call covers every id, and progress fires once at completion.
package hodconsole
